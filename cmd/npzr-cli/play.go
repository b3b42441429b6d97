package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/peterkuimelis/npzr/internal/ai"
	"github.com/peterkuimelis/npzr/internal/client"
	"github.com/peterkuimelis/npzr/internal/game"
	"github.com/peterkuimelis/npzr/internal/log"
)

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	name := fs.String("name", "You", "your player name")
	difficulty := fs.String("difficulty", "medium", "AI difficulty: easy, medium, or hard")
	seed := fs.Int64("seed", 0, "shuffle seed (0 = random)")
	profilesFile := fs.String("profiles", "profiles.yaml", "path to opponent profiles file")
	profile := fs.String("profile", "", "opponent profile name from the profiles file")
	second := fs.Bool("second", false, "let the AI take the first turn")
	fs.Parse(args)

	diff := ai.Difficulty(*difficulty)
	gameSeed := *seed
	if *profile != "" {
		p, err := ai.ProfileByName(*profilesFile, *profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		diff = ai.Difficulty(p.Difficulty)
		if p.Seed != 0 {
			gameSeed = p.Seed
		}
	}

	engine := game.New(game.Config{
		Logger: log.NewTextLogger(os.Stdout),
		Seed:   gameSeed,
	})

	joinHuman := func() *client.Client {
		c, err := client.Join(engine, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return c
	}
	joinAI := func() int {
		seat, err := engine.AddPlayer(fmt.Sprintf("AI (%s)", diff))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return seat
	}

	fmt.Printf("NPZR: first to score all four characters wins. Opponent: %s.\n\n", diff)

	var human *client.Client
	var aiSeat int
	if *second {
		aiSeat = joinAI()
		human = joinHuman()
	} else {
		human = joinHuman()
		aiSeat = joinAI()
	}

	var rng *rand.Rand
	if gameSeed != 0 {
		rng = rand.New(rand.NewSource(gameSeed + 1))
	}
	opponent, err := ai.NewPlayer(ai.PlayerConfig{
		Engine:     engine,
		Seat:       aiSeat,
		Difficulty: diff,
		Rand:       rng,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for !engine.IsComplete() {
		if engine.TurnSeat() == aiSeat {
			if err := opponent.MakeMove(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			continue
		}
		humanAct(reader, human, engine)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	fmt.Println("          GAME OVER")
	fmt.Println("═══════════════════════════════════")
	fmt.Println(engine.Result())
	fmt.Println("═══════════════════════════════════")
}

// humanAct performs one action for the human seat, prompting as the state
// requires.
func humanAct(reader *bufio.Reader, human *client.Client, e *game.Engine) {
	switch human.State().Kind {
	case game.StateDrawCard:
		fmt.Print("\n[Enter] draw a card ")
		reader.ReadString('\n')
		report(human.DrawCard())

	case game.StatePlayCard:
		promptPlay(reader, human, e)

	case game.StateNominateWild:
		promptNominate(reader, human, e)

	case game.StateMoveCard:
		promptMove(reader, human, e)
	}
}

func promptPlay(reader *bufio.Reader, human *client.Client, e *game.Engine) {
	stacks := e.Stacks()
	renderBoard(e, human, stacks)

	hand := human.Hand()
	fmt.Println("\nPlay which card?")
	for i, c := range hand {
		fmt.Printf("  %d) %s\n", i+1, c)
	}
	card := hand[readChoice(reader, len(hand))]

	fmt.Println("Where? (0 starts a new stack)")
	for i, s := range stacks {
		fmt.Printf("  %d) %s\n", i+1, stackLine(human, s))
	}
	var opts game.PlayOptions
	if i := readStackChoice(reader, len(stacks)); i >= 0 {
		opts.TargetStackID = stacks[i].ID
	}

	piles := card.PlayablePiles()
	if len(piles) == 1 {
		opts.TargetPile = piles[0]
	} else {
		fmt.Println("Which pile?")
		for i, p := range piles {
			fmt.Printf("  %d) %s\n", i+1, p)
		}
		opts.TargetPile = piles[readChoice(reader, len(piles))]
	}

	report(human.PlayCard(card.ID, opts))
}

func promptNominate(reader *bufio.Reader, human *client.Client, e *game.Engine) {
	card, _, pile := e.PendingWildCard()
	if card == nil {
		return
	}
	fmt.Printf("\n%s counts as which character? (it stays a %s)\n", card, pile)
	for i, ch := range game.RealCharacters {
		fmt.Printf("  %d) %s\n", i+1, ch)
	}
	ch := game.RealCharacters[readChoice(reader, len(game.RealCharacters))]
	report(human.NominateWildCard(card.ID, game.Nomination{Character: ch, Part: pile}))
}

func promptMove(reader *bufio.Reader, human *client.Client, e *game.Engine) {
	stacks := e.Stacks()
	renderBoard(e, human, stacks)

	legal := e.LegalMoves(human.Seat())
	fmt.Printf("\nYou earned a move (%d owed). Which one?\n", e.PendingMoves())
	for i, opts := range legal {
		fmt.Printf("  %d) %s\n", i+1, describeMove(e, opts))
	}
	report(human.MoveCard(legal[readChoice(reader, len(legal))]))
}

func report(err error) {
	if err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}
}

// renderBoard draws both sides of the table and the human's hand.
func renderBoard(e *game.Engine, human *client.Client, stacks []*game.Stack) {
	opp := e.Opponent(human.Seat())

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  OPPONENT  Hand: %d  Scored: %s\n",
		e.Player(opp).HandCount(), scoreLine(human.OpponentScore()))
	for i, s := range stacks {
		if s.Owner == opp {
			fmt.Printf("║    %d) %s\n", i+1, stackLine(human, s))
		}
	}
	fmt.Println("║──────────────────────────────────────────────────────")
	fmt.Printf("║  YOU  Scored: %s\n", scoreLine(human.MyScore()))
	for i, s := range stacks {
		if s.Owner == human.Seat() {
			fmt.Printf("║    %d) %s\n", i+1, stackLine(human, s))
		}
	}
	fmt.Println("╚══════════════════════════════════════════════════════╝")
	fmt.Printf("Turn %d | Deck: %d | Discard: %d\n", e.Turn(), e.DeckCount(), e.DiscardCount())

	hand := human.Hand()
	if len(hand) > 0 {
		fmt.Print("Hand: ")
		for i, c := range hand {
			fmt.Printf("[%d] %s  ", i+1, c)
		}
		fmt.Println()
	}
}

func stackLine(human *client.Client, s *game.Stack) string {
	owner := "yours"
	if s.Owner != human.Seat() {
		owner = "theirs"
	}
	return fmt.Sprintf("%s (%s)  Head: %s | Torso: %s | Legs: %s",
		game.ShortID(s.ID), owner,
		pileStr(s, game.PartHead), pileStr(s, game.PartTorso), pileStr(s, game.PartLegs))
}

func pileStr(s *game.Stack, p game.BodyPart) string {
	top := s.Top(p)
	if top == nil {
		return "--"
	}
	if n := s.PileSize(p); n > 1 {
		return fmt.Sprintf("%s (+%d)", top, n-1)
	}
	return top.String()
}

func scoreLine(score []game.Character) string {
	if len(score) == 0 {
		return "none"
	}
	names := make([]string, len(score))
	for i, ch := range score {
		names[i] = ch.String()
	}
	return strings.Join(names, ", ")
}

func describeMove(e *game.Engine, opts game.MoveOptions) string {
	var card *game.Card
	for _, s := range e.Stacks() {
		if s.ID == opts.FromStackID {
			card = s.Top(opts.FromPile)
			break
		}
	}
	dst := "a new stack"
	if opts.ToStackID != "" {
		dst = fmt.Sprintf("%s/%s", game.ShortID(opts.ToStackID), opts.ToPile)
	}
	return fmt.Sprintf("%s from %s/%s to %s",
		card, game.ShortID(opts.FromStackID), opts.FromPile, dst)
}

func readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > count {
			fmt.Printf("Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1 // convert to 0-indexed
	}
}

// readStackChoice is readChoice with 0 allowed; it returns -1 for 0.
func readStackChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > count {
			fmt.Printf("Enter 0 for a new stack or a number between 1 and %d\n", count)
			continue
		}
		return n - 1
	}
}
