package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/extract"
	"github.com/alexanderramin/scotty/internal/intelligence"
)

type interestService struct {
	extractor extract.TextExtractor
}

func NewInterestService(extractor extract.TextExtractor) InterestService {
	return &interestService{extractor: extractor}
}

// FromDocument extracts the document text and matches the interest
// vocabulary against it. Extraction errors wrap extract.ErrExtraction.
func (s *interestService) FromDocument(ctx context.Context, r io.ReaderAt, size int64) (domain.InterestSet, error) {
	text, err := s.extractor.ExtractText(ctx, r, size)
	if err != nil {
		return domain.InterestSet{}, err
	}
	return intelligence.ExtractInterests(text), nil
}

func (s *interestService) FromFile(ctx context.Context, path string) (domain.InterestSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.InterestSet{}, fmt.Errorf("%w: %v", extract.ErrExtraction, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.InterestSet{}, fmt.Errorf("%w: %v", extract.ErrExtraction, err)
	}
	return s.FromDocument(ctx, f, info.Size())
}

func (s *interestService) FromText(text string) domain.InterestSet {
	return intelligence.ExtractInterests(text)
}
