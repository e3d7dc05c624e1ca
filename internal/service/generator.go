package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// GeneratorService handles password generation business logic: it fills in
// defaults for a partially specified request and delegates to the core
// generator.
type GeneratorService struct {
	gen *password.Generator
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: password.NewGenerator()}
}

// NewGeneratorServiceWith creates a GeneratorService backed by gen, so tests
// can supply a deterministic source.
func NewGeneratorServiceWith(gen *password.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	pw, err := s.gen.Generate(s.options(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
	}, nil
}

// GenerateBatch produces req.Count passwords (at least one). Each password is
// generated independently with its own bounded retry loop; the first failure
// aborts the batch.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest) ([]model.GenerateResponse, error) {
	count := req.Count
	if count < 1 {
		count = 1
	}

	out := make([]model.GenerateResponse, 0, count)
	for i := 0; i < count; i++ {
		resp, err := s.Generate(req)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *GeneratorService) options(req model.GenerateRequest) password.Options {
	opts := password.Options{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeSimilar:   req.ExcludeSimilar,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
		RequireAll:       req.RequireAll,
		MaxConsecutive:   req.MaxConsecutive,
	}
	if opts.Length < 1 {
		opts.Length = password.DefaultOptions().Length
	}
	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
