package makecsv

import (
	"fmt"

	"github.com/ieee0824/makecsv-go/corpus"
	"github.com/ieee0824/makecsv-go/lexicon"
)

// Unit is the granularity transcripts are tokenized at.
type Unit string

const (
	UnitWord  Unit = "word"
	UnitBPE   Unit = "bpe"
	UnitChar  Unit = "char"
	UnitPhone Unit = "phone"
)

// Units lists the accepted unit names.
var Units = []Unit{UnitWord, UnitBPE, UnitChar, UnitPhone}

// ParseUnit validates a unit name.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

// tokenIDs maps the words of u to dictionary ids according to the
// configured unit.
func (b *Builder) tokenIDs(u corpus.Utterance) ([]string, error) {
	switch b.cfg.Unit {
	case UnitWord:
		ids := make([]string, 0, len(u.Words))
		for _, w := range u.Words {
			id, ok := b.dict.Lookup(w)
			if !ok {
				if id, ok = b.dict.Lookup(b.cfg.Unk); !ok {
					return nil, b.lookupError(u.ID, b.cfg.Unk)
				}
			}
			ids = append(ids, id)
		}
		return ids, nil

	case UnitBPE:
		return nil, fmt.Errorf("unit %s: %w", UnitBPE, ErrNotImplemented)

	case UnitChar:
		var ids []string
		for i, w := range u.Words {
			for _, c := range lexicon.CharTokens(w, b.nlsyms) {
				id, err := b.lookup(u.ID, c)
				if err != nil {
					return nil, err
				}
				ids = append(ids, id)
			}

			if b.cfg.RemoveWordBoundary && i < len(u.Words)-1 {
				id, err := b.lookup(u.ID, b.cfg.Space)
				if err != nil {
					return nil, err
				}
				ids = append(ids, id)
			}
		}
		return ids, nil

	case UnitPhone:
		ids := make([]string, 0, len(u.Words))
		for _, p := range u.Words {
			id, err := b.lookup(u.ID, p)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedUnit, b.cfg.Unit)
}

func (b *Builder) lookup(uttID, token string) (string, error) {
	if id, ok := b.dict.Lookup(token); ok {
		return id, nil
	}
	return "", b.lookupError(uttID, token)
}

func (b *Builder) lookupError(uttID, token string) *LookupError {
	e := &LookupError{UttID: uttID, Unit: b.cfg.Unit, Token: token}
	if near, ok := b.dict.Nearest(token); ok {
		e.Suggestion = near
	}
	return e
}
