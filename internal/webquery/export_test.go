package webquery

// SetMaxBody Уменьшает предел размера ответа для тестов.
func (c *HTTPClient) SetMaxBody(n int64) {
	c.maxBody = n
}
