// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError menerjemahkan SQLSTATE ke (status, pesan).
// 23P01 = exclusion_violation, 23503 = foreign_key_violation, 23505 = unique_violation
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Bentrok jadwal: time range overlap."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Data tidak ditemukan"
	}
	return http.StatusInternalServerError, err.Error()
}

// WritePGError: error DB → envelope JSON. fiber.Error dari dalam transaksi
// diteruskan apa adanya supaya status 4xx tidak tertelan jadi 500.
func WritePGError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
