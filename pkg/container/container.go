package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/auth"
	"library-backend/internal/config"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"

	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	catalogHandler "library-backend/internal/domains/catalog/handler"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Redis    *cache.RedisClient // nil unless SESSION_STORE=redis
	Sessions *auth.Manager

	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	UserHandler     *userHandler.UserHandler
	ResourceHandler *catalogHandler.ResourceHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	sessionStore, err := c.initSessionStore(ctx)
	if err != nil {
		return nil, err
	}
	c.Sessions = auth.NewManager(sessionStore, cfg.Session.TTL)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

// initSessionStore picks the session backend. Memory is the default; Redis
// is opt-in and a Redis outage at startup is fatal since every protected
// route depends on it.
func (c *Container) initSessionStore(ctx context.Context) (auth.Store, error) {
	if c.Config.Session.Store != "redis" {
		return auth.NewMemoryStore(), nil
	}

	redisClient := cache.NewRedisClient(
		c.Config.Redis.Addr,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient

	return auth.NewRedisStore(redisClient.Client), nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresAuthorRepository(pool)
	c.BookRepo = bookRepo.NewPostgresBookRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// Book creation and edits check the author foreign key themselves.
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.Sessions)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.Sessions)
	c.ResourceHandler = catalogHandler.NewResourceHandler(c.AuthorService, c.BookService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("[CONTAINER] Database connections closed")
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		} else {
			log.Println("[CONTAINER] Redis connections closed")
		}
	}
}
