// internal/httpserver/routes_nyt.go
//
// New York Times puzzle endpoints, mounted under /api/nyt:
//   - POST /letter_boxed  → word chains covering every letter on the box
//   - POST /spelling_bee  → words from the hive, pangrams flagged
//
// Both puzzles draw from the common-word list rather than the full
// dictionary, so answers look like words a person would play.

package httpserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/robalobadob/puzzle-solver/internal/wordsearch"
)

func (s *Server) mountNYT(r chi.Router) {
	r.Route("/nyt", func(r chi.Router) {
		r.Post("/letter_boxed", solve(s, "letter_boxed", s.letterBoxed))
		r.Post("/spelling_bee", solve(s, "spelling_bee", s.spellingBee))
	})
}

type letterBoxedReq struct {
	LetterSides        [][]string `json:"letter_sides"`
	MaxSolutionsLength int        `json:"max_solutions_length"`
	Limit              int        `json:"limit"`
}

type letterBoxedRes struct {
	Solutions [][]string `json:"solutions"`
}

func (s *Server) letterBoxed(req letterBoxedReq) (any, int, error) {
	sides := lo.Map(req.LetterSides, func(side []string, _ int) []string { return cleanAll(side) })
	chains, err := wordsearch.LetterBoxed(s.words.Common, sides, req.MaxSolutionsLength, req.Limit)
	if err != nil {
		return nil, 0, err
	}
	if chains == nil {
		chains = [][]string{}
	}
	return letterBoxedRes{Solutions: chains}, len(chains), nil
}

type spellingBeeReq struct {
	CenterLetter string   `json:"center_letter"`
	OuterLetters []string `json:"outer_letters"`
}

type spellingBeeRes struct {
	Words []wordsearch.BeeWord `json:"words"`
}

func (s *Server) spellingBee(req spellingBeeReq) (any, int, error) {
	found, err := wordsearch.SpellingBee(s.words.Common, clean(req.CenterLetter), cleanAll(req.OuterLetters))
	if err != nil {
		return nil, 0, err
	}
	if found == nil {
		found = []wordsearch.BeeWord{}
	}
	return spellingBeeRes{Words: found}, len(found), nil
}
