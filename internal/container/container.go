package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/config"
	"github.com/oksasatya/famjamjam/internal/infrastructure/supabase"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	uploader    *helpers.GCSUploader
	jwtVerifier *helpers.JWTVerifier

	browserDB *supabase.Client
	serverDB  *supabase.Client

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetUploader(u *helpers.GCSUploader)      { uploader = u }
func GetUploader() *helpers.GCSUploader       { return uploader }
func SetJWT(v *helpers.JWTVerifier)           { jwtVerifier = v }
func GetJWT() *helpers.JWTVerifier            { return jwtVerifier }
func SetBrowserDB(c *supabase.Client)         { browserDB = c }
func GetBrowserDB() *supabase.Client          { return browserDB }
func SetServerDB(c *supabase.Client)          { serverDB = c }
func GetServerDB() *supabase.Client           { return serverDB }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// GetStorage returns the redis-backed Storage, or NopStorage when redis is not wired.
func GetStorage() helpers.Storage {
	if redisClient == nil {
		return helpers.NopStorage{}
	}
	return helpers.NewRedisStorage(redisClient, cfg.StoragePrefix, cfg.StorageTTL)
}
