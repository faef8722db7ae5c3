package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/repositories"
)

// TxMiddleware wraps a handler with a database transaction. The transaction
// is placed in the request context for the repositories, committed after the
// handler returns and rolled back on panic. Applied to mutating routes only.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			r = r.WithContext(repositories.WithTx(r.Context(), tx))

			next.ServeHTTP(w, r)

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}
