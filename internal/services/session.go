package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"restaurant-order/internal/domain"
	"restaurant-order/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// A session ends early with one of these after telling the guest why.
var (
	ErrInvalidHour      = errors.New("invalid hour")
	ErrClosed           = errors.New("restaurant is closed")
	ErrInvalidPartySize = errors.New("invalid party size")
	ErrInputClosed      = errors.New("input closed")
	ErrInterrupted      = errors.New("session interrupted")
)

// IsRejection reports whether err is an expected early end of a session
// rather than a failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidHour) ||
		errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrInvalidPartySize) ||
		errors.Is(err, ErrInputClosed) ||
		errors.Is(err, ErrInterrupted)
}

var affirmative = map[string]struct{}{
	"да":  {},
	"yes": {},
	"y":   {},
}

// IsAffirmative compares a yes/no answer case-insensitively.
func IsAffirmative(answer string) bool {
	_, ok := affirmative[strings.ToLower(strings.TrimSpace(answer))]
	return ok
}

func readLine(ctx context.Context, console ports.Console, prompt string) (string, error) {
	line, err := console.ReadLine(ctx, prompt)
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if errors.Is(err, context.Canceled) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskAlcoholPreference asks the current guest whether they drink alcohol
// and records the answer on the admin.
func AskAlcoholPreference(ctx context.Context, admin *domain.Admin, console ports.Console) (bool, error) {
	answer, err := readLine(ctx, console, "Do you drink alcohol? (yes/no): ")
	if err != nil {
		return false, err
	}
	admin.SetAlcoholic(IsAffirmative(answer))
	return admin.IsAlcoholic(), nil
}

// Cook prepares the main course for choice from the kitchen's own product family.
func Cook(k domain.Kitchen, choice domain.ProductChoice) (string, error) {
	switch k := k.(type) {
	case domain.AmericanKitchen:
		return k.CreateBurger(choice).Name(), nil
	case domain.ItalianKitchen:
		return k.CreatePasta(choice).Name(), nil
	default:
		return "", fmt.Errorf("cook: unsupported kitchen %T", k)
	}
}

// Session takes one table's order over a console.
type Session struct {
	Admin   *domain.Admin
	Console ports.Console
	Now     func() time.Time
	NewID   func() string
}

func NewSession(admin *domain.Admin, console ports.Console) *Session {
	return &Session{
		Admin:   admin,
		Console: console,
		Now:     time.Now,
		NewID:   func() string { return uuid.New().String() },
	}
}

// Run walks the guest through the whole ordering flow.
//
// The returned order is nil only when the hour could not be read. On
// ErrClosed the order is empty; on any later error it holds the seats
// taken so far.
func (s *Session) Run(ctx context.Context) (*domain.Order, error) {
	log := zerolog.Ctx(ctx)

	s.Console.Println("Hello! Welcome to our restaurant.")

	hour, err := s.askHour(ctx)
	if err != nil {
		return nil, err
	}

	if !s.Admin.IsOpen(hour) {
		s.Console.Println("Sorry, the restaurant is closed.")
		log.Info().Int("hour", hour).Msg("session rejected: closed")
		return domain.NewOrder(s.NewID(), hour, 0, 0, s.Now()), ErrClosed
	}

	kitchen := s.Admin.Kitchen(hour)
	menu := MenuFor(kitchen)
	s.Console.Printf("We are serving the %s kitchen now.\n", kitchen.Cuisine())

	partySize, err := s.askPartySize(ctx)
	if err != nil {
		return domain.NewOrder(s.NewID(), hour, kitchen.Cuisine(), 0, s.Now()), err
	}

	order := domain.NewOrder(s.NewID(), hour, kitchen.Cuisine(), partySize, s.Now())
	log.Debug().Str("order_id", order.ID).Int("hour", hour).Stringer("cuisine", order.Cuisine).Int("party_size", partySize).Msg("session started")

	for i := 0; i < partySize; i++ {
		s.Console.Printf("\nOrder for guest #%d:\n", i+1)
		if err := s.seatGuest(ctx, order, kitchen, menu); err != nil {
			return order, err
		}
	}

	s.printSummary(order)

	log.Info().Str("order_id", order.ID).Int("seats", len(order.Seats)).Int("served", len(order.Meals())).Msg("session finished")
	return order, nil
}

func (s *Session) askHour(ctx context.Context) (int, error) {
	answer, err := readLine(ctx, s.Console, "What time is it now (0-23)? ")
	if err != nil {
		return 0, err
	}

	hour, err := strconv.Atoi(answer)
	if err != nil || !domain.ValidHour(hour) {
		s.Console.Println("Invalid time format.")
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, answer)
	}
	return hour, nil
}

func (s *Session) askPartySize(ctx context.Context) (int, error) {
	answer, err := readLine(ctx, s.Console, "How many people are at the table? ")
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 {
		s.Console.Println("Invalid number of people.")
		return 0, fmt.Errorf("%w: %q", ErrInvalidPartySize, answer)
	}
	return n, nil
}

// seatGuest runs one guest through repeat, alcohol and course selection.
func (s *Session) seatGuest(ctx context.Context, order *domain.Order, kitchen domain.Kitchen, menu Menu) error {
	log := zerolog.Ctx(ctx)

	if len(order.Seats) > 0 {
		answer, err := readLine(ctx, s.Console, "Would you like the same as the previous guest? (yes/no): ")
		if err != nil {
			return err
		}
		if IsAffirmative(answer) {
			meal, err := order.RepeatPrevious()
			if err == nil {
				s.Console.Println("You chose the same order.")
				log.Debug().Str("order_id", order.ID).Int("seat", len(order.Seats)).Stringer("meal", meal).Msg("meal repeated")
				return nil
			}
			s.Console.Println("The previous guest did not order anything, please choose from the menu.")
		}
	}

	if _, err := AskAlcoholPreference(ctx, s.Admin, s.Console); err != nil {
		return err
	}

	meal, ok, err := s.chooseCourse(ctx, kitchen, menu)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("order_id", order.ID).Int("seat", len(order.Seats)+1).Msg("seat skipped")
		return order.Skip()
	}

	log.Debug().Str("order_id", order.ID).Int("seat", len(order.Seats)+1).Stringer("meal", meal).Msg("meal served")
	return order.Serve(meal)
}

// chooseCourse reports ok=false when the guest picked something not on the menu.
func (s *Session) chooseCourse(ctx context.Context, kitchen domain.Kitchen, menu Menu) (domain.Meal, bool, error) {
	family := strings.ToLower(menu.Family())
	s.Console.Printf("%s - %s\n", CourseALaCarte, menu.Family())
	s.Console.Printf("%s - Combo meal (%s + drink)\n", CourseCombo, family)

	choice, err := readLine(ctx, s.Console, "Your choice: ")
	if err != nil {
		return domain.Meal{}, false, err
	}

	switch choice {
	case CourseALaCarte:
		main, err := s.chooseProduct(ctx, kitchen, menu, "Choose a "+family+":")
		if err != nil {
			return domain.Meal{}, false, err
		}
		s.Console.Printf("Preparing %s...\n", main)
		s.Console.Println("Dish is served.")
		return domain.NewMealBuilder().AddMainCourse(main).Build(), true, nil

	case CourseCombo:
		main, err := s.chooseProduct(ctx, kitchen, menu, "Choose a "+family+" for your combo meal:")
		if err != nil {
			return domain.Meal{}, false, err
		}
		meal := domain.NewMealBuilder().
			AddMainCourse(main).
			AddDrink(menu.Drink(s.Admin.IsAlcoholic())).
			Build()
		s.Console.Printf("Your combo meal: %s\n", meal)
		return meal, true, nil

	default:
		s.Console.Println("There is no such option on the menu.")
		return domain.Meal{}, false, nil
	}
}

func (s *Session) chooseProduct(ctx context.Context, kitchen domain.Kitchen, menu Menu, header string) (string, error) {
	s.Console.Println(header)
	for _, item := range menu.Courses {
		s.Console.Printf("%d - %s\n", item.Code, item.Name)
	}

	code, err := readLine(ctx, s.Console, "Your choice: ")
	if err != nil {
		return "", err
	}
	return Cook(kitchen, domain.ParseChoice(code))
}

func (s *Session) printSummary(order *domain.Order) {
	s.Console.Println("\nEveryone's dishes are ordered!")
	for _, seat := range order.Seats {
		if seat.Served {
			s.Console.Printf("Guest #%d: %s\n", seat.Number, seat.Meal)
		} else {
			s.Console.Printf("Guest #%d: nothing ordered\n", seat.Number)
		}
	}
	s.Console.Println("Thank you for visiting! We look forward to seeing you again.")
}
