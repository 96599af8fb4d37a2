// Package flow wires transition codes to the concrete screens.
package flow

import (
	"fmt"

	"github.com/younwookim/connectfour/internal/application/nav"
	"github.com/younwookim/connectfour/internal/application/scene"
	"github.com/younwookim/connectfour/internal/application/scene/loading"
	"github.com/younwookim/connectfour/internal/application/scene/menu"
	"github.com/younwookim/connectfour/internal/application/scene/playing"
	"github.com/younwookim/connectfour/internal/application/scene/result"
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/domain/board"
)

// Routes returns the standard route table:
//
//	MAIN_MENU                      main menu
//	PLAYER_VS_PLAYER               game between the two human players
//	PLAYER_VS_COMPUTER, COMPUTER_VS_COMPUTER, TRAIN_COMPUTER
//	                               difficulty select
//	EASY/NORMAL/HARD/MASTER_MODE   loading
//	LOAD_COMPUTER                  game with the prepared match, replacing loading
//	WINNER                         result, replacing the game
func Routes(kit *ui.Kit) map[state.Code]nav.Route {
	difficulty := nav.Route{Build: func(sel nav.Selection) (scene.Screen, error) {
		return menu.NewDifficulty(kit, sel.Mode), nil
	}}
	load := nav.Route{Build: func(sel nav.Selection) (scene.Screen, error) {
		return loading.New(kit, loading.Setup{
			Mode:       sel.Mode,
			Difficulty: sel.Difficulty,
			Humans:     sel.Players,
		}), nil
	}}

	return map[state.Code]nav.Route{
		state.MainMenu: {Build: func(nav.Selection) (scene.Screen, error) {
			return menu.NewMain(kit), nil
		}},
		state.PlayerVsPlayer: {Build: func(sel nav.Selection) (scene.Screen, error) {
			b := kit.Settings.Board
			m := board.NewMatch(b.Columns, b.Rows, board.Player{Name: sel.Players[0]}, board.Player{Name: sel.Players[1]})
			return playing.New(kit, m, state.PlayerVsPlayer), nil
		}},
		state.PlayerVsComputer:   difficulty,
		state.ComputerVsComputer: difficulty,
		state.TrainComputer:      difficulty,
		state.EasyMode:           load,
		state.NormalMode:         load,
		state.HardMode:           load,
		state.MasterMode:         load,
		state.LoadComputer: {Replace: true, Build: func(sel nav.Selection) (scene.Screen, error) {
			m, ok := sel.Payload.(*board.Match)
			if !ok || m == nil {
				return nil, fmt.Errorf("no prepared match, got %T", sel.Payload)
			}
			return playing.New(kit, m, sel.Mode), nil
		}},
		state.Winner: {Replace: true, Build: func(sel nav.Selection) (scene.Screen, error) {
			o, _ := sel.Payload.(board.Outcome)
			return result.New(kit, o), nil
		}},
	}
}

// Players returns the configured human player names.
func Players(kit *ui.Kit) [2]string {
	p := kit.Settings.Players
	return [2]string{p.First, p.Second}
}

// NewDriver creates a driver over the standard routes starting at start.
func NewDriver(kit *ui.Kit, start state.Code) (*nav.Driver, error) {
	return nav.New(Routes(kit), start, nav.Selection{Players: Players(kit)})
}
