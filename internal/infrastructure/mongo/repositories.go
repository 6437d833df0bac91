package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	res, err := r.coll.InsertOne(ctx, newUserDocument(u))
	if err != nil {
		return translate(err)
	}
	u.ID = insertedID(res)
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	docs, err := findAll[userDocument](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].entity())
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	d, err := findOne[userDocument](ctx, r.coll, byID(oid))
	if err != nil {
		return nil, err
	}
	u := d.entity()
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	d, err := findOne[userDocument](ctx, r.coll, bson.M{"Email": email})
	if err != nil {
		return nil, err
	}
	u := d.entity()
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	return replaceOne(ctx, r.coll, u.ID, newUserDocument(u))
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	res, err := r.coll.InsertOne(ctx, newJobDocument(j))
	if err != nil {
		return translate(err)
	}
	j.ID = insertedID(res)
	return nil
}

func (r *JobRepository) List(ctx context.Context) ([]entity.Job, error) {
	docs, err := findAll[jobDocument](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Job, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].entity())
	}
	return out, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	d, err := findOne[jobDocument](ctx, r.coll, byID(oid))
	if err != nil {
		return nil, err
	}
	j := d.entity()
	return &j, nil
}

func (r *JobRepository) FindByName(ctx context.Context, name string) (*entity.Job, error) {
	d, err := findOne[jobDocument](ctx, r.coll, bson.M{"JobsName": name})
	if err != nil {
		return nil, err
	}
	j := d.entity()
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j *entity.Job) error {
	return replaceOne(ctx, r.coll, j.ID, newJobDocument(j))
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	res, err := r.coll.InsertOne(ctx, newApplicationDocument(a))
	if err != nil {
		return translate(err)
	}
	a.ID = insertedID(res)
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	docs, err := findAll[applicationDocument](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Application, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].entity())
	}
	return out, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	d, err := findOne[applicationDocument](ctx, r.coll, byID(oid))
	if err != nil {
		return nil, err
	}
	a := d.entity()
	return &a, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a *entity.Application) error {
	return replaceOne(ctx, r.coll, a.ID, newApplicationDocument(a))
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companiesCollection)}
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	res, err := r.coll.InsertOne(ctx, newCompanyDocument(c))
	if err != nil {
		return translate(err)
	}
	c.ID = insertedID(res)
	return nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]entity.Company, error) {
	docs, err := findAll[companyDocument](ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].entity())
	}
	return out, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	d, err := findOne[companyDocument](ctx, r.coll, byID(oid))
	if err != nil {
		return nil, err
	}
	c := d.entity()
	return &c, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	return replaceOne(ctx, r.coll, c.ID, newCompanyDocument(c))
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

var (
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.JobRepository         = (*JobRepository)(nil)
	_ repository.ApplicationRepository = (*ApplicationRepository)(nil)
	_ repository.CompanyRepository     = (*CompanyRepository)(nil)
)
