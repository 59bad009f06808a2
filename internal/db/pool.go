package db

import (
	"errors"
	"fmt"
	"sync"
)

// Pool opens each distinct connection string once so several table handles
// can share a connection.
type Pool struct {
	mu    sync.Mutex
	open  func(dsn string) (*GormDB, error)
	conns map[string]*GormDB
}

func NewPool() *Pool {
	return &Pool{
		open:  Open,
		conns: make(map[string]*GormDB),
	}
}

// Get returns the handle for dsn, connecting on first use.
func (p *Pool) Get(dsn string) (*GormDB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.conns[dsn]; ok {
		return conn, nil
	}

	conn, err := p.open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open handle: %w", err)
	}
	p.conns[dsn] = conn
	return conn, nil
}

// Len reports the number of open connections.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.conns)
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	for dsn, conn := range p.conns {
		err = errors.Join(err, conn.Close())
		delete(p.conns, dsn)
	}
	return err
}
