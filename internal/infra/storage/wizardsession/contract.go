package wizardsession

// Session хранимая сессия; Close вызывается при удалении из репозитория
type Session interface {
	Close()
}
