package client

import "github.com/DanRulev/uniprep.git/internal/config"

type Clients struct {
	*OpenAI
}

func InitClients(cfg config.AIConfig) Clients {
	return Clients{
		OpenAI: NewOpenAI(cfg),
	}
}
