package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/config"
	"github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/internal/infrastructure/storage"
	"github.com/aspyra/jobboard-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	repos       *storage.Repositories
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	hasher     *helpers.BcryptHasher

	events  application.EventPublisher
	resumes application.ResumeUploader
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetRepositories(r *storage.Repositories) { repos = r }
func GetRepositories() *storage.Repositories  { return repos }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetHasher(h *helpers.BcryptHasher) { hasher = h }
func GetHasher() *helpers.BcryptHasher {
	if hasher != nil {
		return hasher
	}
	return helpers.NewBcryptHasher(0)
}

// SetEvents registers the status event publisher. A nil publisher leaves
// events disabled.
func SetEvents(p *helpers.RabbitPublisher) {
	if p != nil {
		events = p
	}
}
func GetEvents() application.EventPublisher { return events }

// SetResumes registers the resume uploader. A nil uploader leaves uploads
// disabled.
func SetResumes(u *helpers.GCSUploader) {
	if u != nil {
		resumes = u
	}
}
func GetResumes() application.ResumeUploader { return resumes }
