package model

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserExemption{},
		&Customer{},
		&Policy{},
		&CompetitorPolicy{},
		&ChatSession{},
		&InteractionLog{},
	}
}
