// Package career implements the save-state for one manager's club.
//
// A Career is treated as an immutable value: every operation returns a new
// Career instead of mutating the receiver. Views and the sync layer always
// work with whole replacement values, which keeps optimistic updates and
// remote snapshots trivially interchangeable.
package career

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeason       = errors.New("the season must have the format YYYY/YYYY with consecutive years")
	ErrSeasonalEventsFull  = errors.New("a career can have at most 3 seasonal events at the same time")
	ErrInvalidPosition     = errors.New("the specified position is not a valid position code")
	ErrIndexOutOfRange     = errors.New("the specified index does not exist")
	ErrInsufficientFunds   = errors.New("the transfer budget does not cover this fee")
	ErrNegativeFee         = errors.New("the transfer fee must not be negative")
	ErrPlayerNotFound      = errors.New("there is no player with this ID in the squad")
	ErrInsufficientHistory = errors.New("at least 2 budget history points are needed for a trend")
)

// MaxSeasonalEvents is the number of concurrent seasonal narrative events.
const MaxSeasonalEvents = 3

// WageDisplayMode determines the unit wages are displayed in. The stored
// wage budget is always the weekly figure, the mode never scales it.
type WageDisplayMode string

const (
	WageWeekly WageDisplayMode = "weekly"
	WageYearly WageDisplayMode = "yearly"
)

// TransactionType is the direction of a transfer.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// BudgetPoint is a snapshot of both budgets, sampled at career creation and
// at every season advance. Used to render trend charts.
type BudgetPoint struct {
	Date           time.Time `json:"date"`
	TransferBudget int64     `json:"transferBudget"`
	WageBudget     int64     `json:"wageBudget"`
}

// Transaction is one entry of the transfer ledger. Immutable once appended.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	Type       TransactionType `json:"type"`
	PlayerName string          `json:"playerName"`
	Amount     int64           `json:"amount"`
	Wage       int64           `json:"wage"`
}

// Career is the complete save-state for one manager's club.
type Career struct {
	ManagerName     string          `json:"managerName"`
	TeamName        string          `json:"teamName"`
	TeamLogo        string          `json:"teamLogo,omitempty"`
	TransferBudget  int64           `json:"transferBudget"`
	WageBudget      int64           `json:"wageBudget"` // weekly, regardless of display mode
	WageDisplayMode WageDisplayMode `json:"wageDisplayMode"`
	Season          string          `json:"season"`
	Players         []Player        `json:"players"`
	Transactions    []Transaction   `json:"transactions"`
	BudgetHistory   []BudgetPoint   `json:"budgetHistory"`
	Trophies        []string        `json:"trophies"`
	SeasonalEvents  []string        `json:"seasonalEvents"`
	PreMatchEvents  []string        `json:"preMatchEvents"`
}

// New creates a Career with empty collections and the initial budget
// history point.
func New(managerName, teamName, teamLogo string, transferBudget, weeklyWage int64, season string, now time.Time) (Career, error) {
	if _, err := ParseSeason(season); err != nil {
		return Career{}, err
	}

	return Career{
		ManagerName:     managerName,
		TeamName:        teamName,
		TeamLogo:        teamLogo,
		TransferBudget:  transferBudget,
		WageBudget:      weeklyWage,
		WageDisplayMode: WageWeekly,
		Season:          season,
		Players:         []Player{},
		Transactions:    []Transaction{},
		BudgetHistory: []BudgetPoint{{
			Date:           now,
			TransferBudget: transferBudget,
			WageBudget:     weeklyWage,
		}},
		Trophies:       []string{},
		SeasonalEvents: []string{},
		PreMatchEvents: []string{},
	}, nil
}

// ParseSeason parses a "YYYY/YYYY" season string and returns the first
// year. The second year must be the first year plus one.
func ParseSeason(season string) (int, error) {
	first, second, found := strings.Cut(season, "/")
	if !found {
		return 0, ErrInvalidSeason
	}

	start, err := strconv.Atoi(first)
	if err != nil {
		return 0, ErrInvalidSeason
	}

	end, err := strconv.Atoi(second)
	if err != nil || end != start+1 {
		return 0, ErrInvalidSeason
	}

	return start, nil
}

// NextSeason increments both years of a season string by one.
func NextSeason(season string) (string, error) {
	start, err := ParseSeason(season)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d/%d", start+1, start+2), nil
}

// AdvanceSeason moves the career into the next season: the season string is
// incremented, every player ages by one year, the transfer ledger is
// emptied and the budget history restarts with a single point holding the
// pre-advance budgets. The result is one new value, there is no
// intermediate state.
func (c Career) AdvanceSeason(now time.Time) (Career, error) {
	next, err := NextSeason(c.Season)
	if err != nil {
		return Career{}, err
	}

	players := make([]Player, len(c.Players))
	for i, p := range c.Players {
		p.Age++
		players[i] = p
	}

	c.Season = next
	c.Players = players
	c.Transactions = []Transaction{}
	c.BudgetHistory = []BudgetPoint{{
		Date:           now,
		TransferBudget: c.TransferBudget,
		WageBudget:     c.WageBudget,
	}}

	return c, nil
}

// SetTransferBudget replaces the transfer budget.
func (c Career) SetTransferBudget(amount int64) Career {
	c.TransferBudget = amount
	return c
}

// SetWageBudget stores a wage budget entered in the given unit. Yearly
// input is converted to the canonical weekly figure by dividing by 52 with
// rounding. The display mode follows the unit that was used.
func (c Career) SetWageBudget(amount int64, unit WageDisplayMode) Career {
	if unit == WageYearly {
		amount = (amount + 26) / 52
	}

	c.WageBudget = amount
	c.WageDisplayMode = unit
	return c
}

// AddPlayers appends players to the roster. Names are not deduplicated,
// the player ID is the unique key.
func (c Career) AddPlayers(players ...Player) Career {
	c.Players = append(append([]Player{}, c.Players...), players...)
	return c
}

// RemovePlayer removes exactly the player with the given ID.
func (c Career) RemovePlayer(id uuid.UUID) (Career, error) {
	players := make([]Player, 0, len(c.Players))
	found := false

	for _, p := range c.Players {
		if p.ID == id {
			found = true
			continue
		}
		players = append(players, p)
	}

	if !found {
		return Career{}, ErrPlayerNotFound
	}

	c.Players = players
	return c, nil
}

// Buy signs a player: the fee is deducted from the transfer budget, the
// player joins the roster and a buy transaction is appended to the ledger.
func (c Career) Buy(player Player, fee int64) (Career, error) {
	if fee < 0 {
		return Career{}, ErrNegativeFee
	}

	if fee > c.TransferBudget {
		return Career{}, ErrInsufficientFunds
	}

	c.TransferBudget -= fee
	c = c.AddPlayers(player)
	c.Transactions = append(append([]Transaction{}, c.Transactions...), Transaction{
		ID:         uuid.New(),
		Type:       TransactionBuy,
		PlayerName: player.Name,
		Amount:     fee,
		Wage:       player.Wage,
	})

	return c, nil
}

// Sell releases a player for a fee: the player leaves the roster, the fee
// is added to the transfer budget and a sell transaction is appended.
func (c Career) Sell(id uuid.UUID, fee int64) (Career, error) {
	if fee < 0 {
		return Career{}, ErrNegativeFee
	}

	var sold *Player
	for i := range c.Players {
		if c.Players[i].ID == id {
			sold = &c.Players[i]
			break
		}
	}
	if sold == nil {
		return Career{}, ErrPlayerNotFound
	}

	name, wage := sold.Name, sold.Wage

	c, err := c.RemovePlayer(id)
	if err != nil {
		return Career{}, err
	}

	c.TransferBudget += fee
	c.Transactions = append(append([]Transaction{}, c.Transactions...), Transaction{
		ID:         uuid.New(),
		Type:       TransactionSell,
		PlayerName: name,
		Amount:     fee,
		Wage:       wage,
	})

	return c, nil
}

// AddTrophy appends a trophy name.
func (c Career) AddTrophy(name string) Career {
	c.Trophies = append(append([]string{}, c.Trophies...), name)
	return c
}

// RemoveTrophy removes the trophy at the given index.
func (c Career) RemoveTrophy(index int) (Career, error) {
	trophies, err := removeIndex(c.Trophies, index)
	if err != nil {
		return Career{}, err
	}

	c.Trophies = trophies
	return c, nil
}

// AddSeasonalEvent appends a seasonal narrative event. At most 3 events
// can exist at the same time.
func (c Career) AddSeasonalEvent(text string) (Career, error) {
	if len(c.SeasonalEvents) >= MaxSeasonalEvents {
		return Career{}, ErrSeasonalEventsFull
	}

	c.SeasonalEvents = append(append([]string{}, c.SeasonalEvents...), text)
	return c, nil
}

// RemoveSeasonalEvent removes the seasonal event at the given index.
func (c Career) RemoveSeasonalEvent(index int) (Career, error) {
	events, err := removeIndex(c.SeasonalEvents, index)
	if err != nil {
		return Career{}, err
	}

	c.SeasonalEvents = events
	return c, nil
}

// SetPreMatchEvent replaces the pre-match event. A new generation never
// appends, there is at most one.
func (c Career) SetPreMatchEvent(text string) Career {
	c.PreMatchEvents = []string{text}
	return c
}

// ClearPreMatchEvent removes the pre-match event.
func (c Career) ClearPreMatchEvent() Career {
	c.PreMatchEvents = []string{}
	return c
}

// TrendPoints returns the budget history for trend charts. A line needs at
// least two points, fewer are reported as insufficient data.
func (c Career) TrendPoints() ([]BudgetPoint, error) {
	if len(c.BudgetHistory) < 2 {
		return nil, ErrInsufficientHistory
	}

	return c.BudgetHistory, nil
}

// LatestTransaction returns the most recent ledger entry, or nil when the
// ledger is empty.
func (c Career) LatestTransaction() *Transaction {
	if len(c.Transactions) == 0 {
		return nil
	}

	t := c.Transactions[len(c.Transactions)-1]
	return &t
}

func removeIndex(list []string, index int) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)

	return out, nil
}
