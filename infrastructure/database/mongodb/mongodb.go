package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnectTimeout   = 10 * time.Second
	defaultOperationTimeout = 15 * time.Second
)

// Connection mantém o client MongoDB e o timeout padrão das operações
type Connection struct {
	client     *mongo.Client
	database   string
	collection string
	timeout    time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewConnection(ctx context.Context, cfg config.Mongo) (*Connection, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MONGO_URI é obrigatório")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("MONGO_DATABASE é obrigatório")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = defaultOperationTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("erro ao pingar o mongodb: %w", err)
	}

	log.L.WithField("driver", config.DriverMongoDB).Infof("Conexão com o MongoDB estabelecida (database %s)", cfg.Database)

	return &Connection{
		client:     client,
		database:   cfg.Database,
		collection: cfg.Collection,
		timeout:    cfg.OperationTimeout,
	}, nil
}

func (c *Connection) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Sales retorna a coleção configurada em MONGO_COLLECTION
func (c *Connection) Sales() *mongo.Collection {
	return c.Database().Collection(c.collection)
}

func (c *Connection) Ping(ctx context.Context) error {
	c.mu.RLock()
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return fmt.Errorf("conexão mongodb encerrada")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("erro ao encerrar conexão mongodb: %w", err)
	}
	return nil
}

// OperationTimeout é o timeout aplicado às operações que chegam sem deadline
func (c *Connection) OperationTimeout() time.Duration {
	return c.timeout
}

// WithTimeout aplica o timeout quando o contexto ainda não tem deadline
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
