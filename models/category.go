package models

// Category, sunucuları sınıflandıran etikettir ("gaming", "music" gibi).
// Bu servis kategorileri sadece okur.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
