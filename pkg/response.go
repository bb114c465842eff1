package pkg

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// APIResponse, tüm endpoint'lerin döndüğü zarf.
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": "..."}
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON, data'yı başarılı zarf içinde yazar.
func JSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, APIResponse{Success: true, Data: data})
}

// Error, err'i errors.Is ile HTTP status'a çevirip hata zarfı yazar.
//
// 500'lerde client'a sadece "internal error" gider, asıl hata log'lanır:
// store hataları SQL ve dosya yolu detayı taşıyabilir.
func Error(w http.ResponseWriter, err error) {
	status := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[http] internal error: %v", err)
		message = ErrInternal.Error()
	}

	writeEnvelope(w, status, APIResponse{Error: message})
}

// ErrorWithMessage, sentinel'e bağlı olmayan sabit mesajlı hata yazar.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, APIResponse{Error: message})
}

// StatusFor, domain error'ın HTTP karşılığı. Wrap edilmiş error'lar da eşleşir.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Header yazıldıktan sonra status değiştirilemez; encode hatası sadece log'lanır.
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}
