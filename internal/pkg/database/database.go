package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type QueryExecuter interface {
	Executor
	Querier
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type QueryTxBeginner interface {
	QueryExecuter
	TxBeginner
}

type PostgresSettings struct {
	User       string `env:"USER" envDefault:"admin"`
	Password   string `env:"PASSWORD" envDefault:"password"`
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"5432"`
	DBName     string `env:"NAME" envDefault:"vending_machine_db"`
	SSlEnabled bool   `env:"SSL_ENABLED" envDefault:"false"`
}

func (s PostgresSettings) GetURL() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", s.User, s.Password, s.Host, s.Port, s.DBName)
	if !s.SSlEnabled {
		url += "?sslmode=disable"
	}

	return url
}
