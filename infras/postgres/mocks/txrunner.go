package mocks

import (
	"context"
	"tourbase/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type txRunnerImpl struct {
}

// RunInTx implements postgres.TxRunner.
func (r *txRunnerImpl) RunInTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunnerImpl{}
}
