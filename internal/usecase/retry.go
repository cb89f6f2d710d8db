package usecase

import (
	"context"
	"errors"

	repo "elegance/internal/repository"
)

// 接続断のときだけプールを張り直して、トランザクション全体を1回リトライする。
// それでも失敗したらErrConnectionLostをそのまま返す。
func withConnRetry(ctx context.Context, tm repo.TransactionManager, fn func(r repo.TxRepos) error) error {
	err := tm.WithinTx(ctx, fn)
	if !errors.Is(err, repo.ErrConnectionLost) {
		return err
	}
	if rerr := tm.Reset(ctx); rerr != nil {
		return err
	}
	return tm.WithinTx(ctx, fn)
}
