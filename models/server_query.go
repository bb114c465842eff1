package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ServerListQuery, GET /api/servers query parametrelerinin parse edilmiş hali.
//
// Tüm alanlar opsiyoneldir ve AND ile birleşir:
//   - category: ?category=<id veya isim>
//   - user:     ?user=true → sadece caller'ın üye olduğu sunucular
//   - q:        ?q=<n>     → sonuç sayısı üst sınırı (en son uygulanır)
type ServerListQuery struct {
	Category       string
	MembershipOnly bool
	Limit          *int // nil = sınırsız
}

// ParseServerListQuery, URL query değerlerinden ServerListQuery oluşturur.
//
// Boş "category" ve boş "q" yok sayılır. "q" işaretli ("+3") olabilir,
// int aralığını aşan pozitif değer limitsiz sayılır. "user" sadece tam olarak "true"
// literal'i ise filtreyi açar ("1", "TRUE" vb. açmaz).
func ParseServerListQuery(values url.Values) (*ServerListQuery, error) {
	q := &ServerListQuery{
		Category:       values.Get("category"),
		MembershipOnly: values.Get("user") == "true",
	}

	if raw := values.Get("q"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
			// int'e sığmayan pozitif limit hiçbir sonucu kesmez: limitsiz.
		case err != nil:
			return nil, fmt.Errorf("q must be a non-negative integer, got %q", raw)
		default:
			q.Limit = &n
		}
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate, ServerListQuery'nin geçerli olup olmadığını kontrol eder.
// Negatif limit clamp edilmez, hata döner.
func (q *ServerListQuery) Validate() error {
	if q.Limit != nil && *q.Limit < 0 {
		return fmt.Errorf("q must be a non-negative integer, got %d", *q.Limit)
	}
	return nil
}
