package contextkeys

type contextKey string

// Ключи значений, которые middleware кладут в контекст запроса.
const (
	RequestID contextKey = "requestID"
	ClientID  contextKey = "clientID"
	Subject   contextKey = "subject"
)
