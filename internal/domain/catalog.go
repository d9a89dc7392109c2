package domain

// User — зарегистрированный покупатель.
type User struct {
	ID          int64
	Name        string
	Surname     string
	FathersName string
	Email       string
}

// Book — книга из общего каталога.
type Book struct {
	ID     int64
	Name   string
	Author string
	ISBN   string
}

// Shop — магазин, предлагающий подмножество книг из каталога.
// Связь магазин↔книга — many-to-many, без дубликатов и без порядка.
type Shop struct {
	ID       int64
	Name     string
	Address  string
	PostCode string
	// Books — книги, доступные в этом магазине (заполняется при чтении).
	Books []Book
}
