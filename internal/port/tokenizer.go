package port

import "classroom/internal/domain"

type Tokenizer interface {
	Tokenize(raw string) domain.TokenSet
}
