// internal/httpserver/routes_gamepigeon.go
//
// GamePigeon solver endpoints, mounted under /api/game_pigeon:
//   - POST /anagrams               → every word spelled from a rack
//   - POST /word_hunt              → words traced on a board, with paths
//   - POST /word_bites             → words built from tiles, with tile usage
//   - POST /connect4/move          → AI column for a position
//   - POST /connect4/game_over     → finished? who won? which cells?
//   - POST /gomoku/move            → AI cell for a position
//   - POST /gomoku/game_over       → as connect4

package httpserver

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/robalobadob/puzzle-solver/internal/game"
	"github.com/robalobadob/puzzle-solver/internal/wordsearch"
)

func (s *Server) mountGamePigeon(r chi.Router) {
	r.Route("/game_pigeon", func(r chi.Router) {
		r.Post("/anagrams", solve(s, "anagrams", s.anagrams))
		r.Post("/word_hunt", solve(s, "word_hunt", s.wordHunt))
		r.Post("/word_bites", solve(s, "word_bites", s.wordBites))
		r.Post("/connect4/move", solve(s, "connect4_move", s.connect4Move))
		r.Post("/connect4/game_over", solve(s, "connect4_game_over", connect4GameOver))
		r.Post("/gomoku/move", solve(s, "gomoku_move", s.gomokuMove))
		r.Post("/gomoku/game_over", solve(s, "gomoku_game_over", gomokuGameOver))
	})
}

// cleanAll lowercases and trims every tile.
func cleanAll(in []string) []string {
	return lo.Map(in, func(t string, _ int) string { return clean(t) })
}

func clean(t string) string { return strings.ToLower(strings.TrimSpace(t)) }

// ------------------------------ word games ---------------------------------

type anagramsReq struct {
	Letters []string `json:"letters"`
}

type anagramsRes struct {
	Words []string `json:"words"`
}

func (s *Server) anagrams(req anagramsReq) (any, int, error) {
	found, err := wordsearch.Anagrams(s.words.Dictionary, cleanAll(req.Letters))
	if err != nil {
		return nil, 0, err
	}
	return anagramsRes{Words: found}, len(found), nil
}

type wordHuntReq struct {
	Letters   []string `json:"letters"`
	BoardType string   `json:"board_type"`
	MinLength int      `json:"min_length"`
}

type wordHuntRes struct {
	Words    map[string][]int `json:"words"`
	Order    []string         `json:"order"`
	RowSizes []int            `json:"row_sizes"`
}

func (s *Server) wordHunt(req wordHuntReq) (any, int, error) {
	boardType := clean(req.BoardType)
	if boardType == "" {
		boardType = "4x4"
	}
	topo, err := wordsearch.TopologyByName(boardType)
	if err != nil {
		return nil, 0, err
	}
	sols, err := wordsearch.WordHunt(s.words.Dictionary, cleanAll(req.Letters), topo, req.MinLength)
	if err != nil {
		return nil, 0, err
	}
	order := lo.Map(sols, func(h wordsearch.HuntSolution, _ int) string { return h.Word })
	res := wordHuntRes{Words: wordsearch.HuntWords(sols), Order: order, RowSizes: topo.RowSizes()}
	return res, len(sols), nil
}

type wordBitesReq struct {
	SingleLetters     []string `json:"single_letters"`
	HorizontalLetters []string `json:"horizontal_letters"`
	VerticalLetters   []string `json:"vertical_letters"`
	MinLength         int      `json:"min_length"`
}

type wordBitesRes struct {
	Solutions []wordsearch.BitesSolution `json:"solutions"`
}

func (s *Server) wordBites(req wordBitesReq) (any, int, error) {
	sols, err := wordsearch.WordBites(s.words.Dictionary, wordsearch.BitesTiles{
		Single:     cleanAll(req.SingleLetters),
		Horizontal: cleanAll(req.HorizontalLetters),
		Vertical:   cleanAll(req.VerticalLetters),
	}, req.MinLength)
	if err != nil {
		return nil, 0, err
	}
	return wordBitesRes{Solutions: sols}, len(sols), nil
}

// ------------------------------ board games --------------------------------

type positionReq struct {
	PlayerLocations []game.Location `json:"player_locations"`
	AILocations     []game.Location `json:"ai_locations"`
	MaxSearchDepth  int             `json:"max_search_depth"`
	BoardSize       int             `json:"board_size"`
}

func (s *Server) connect4Move(req positionReq) (any, int, error) {
	mv, err := s.solver.Connect4Move(req.PlayerLocations, req.AILocations, req.MaxSearchDepth)
	if err != nil {
		return nil, 0, err
	}
	return mv, 1, nil
}

func connect4GameOver(req positionReq) (any, int, error) {
	out, err := game.Connect4GameOver(req.PlayerLocations, req.AILocations)
	if err != nil {
		return nil, 0, err
	}
	return out, len(out.WinningLocations), nil
}

func (s *Server) gomokuMove(req positionReq) (any, int, error) {
	mv, err := s.solver.GomokuMove(req.PlayerLocations, req.AILocations, req.BoardSize, req.MaxSearchDepth)
	if err != nil {
		return nil, 0, err
	}
	return mv, 1, nil
}

func gomokuGameOver(req positionReq) (any, int, error) {
	out, err := game.GomokuGameOver(req.PlayerLocations, req.AILocations, req.BoardSize)
	if err != nil {
		return nil, 0, err
	}
	return out, len(out.WinningLocations), nil
}
