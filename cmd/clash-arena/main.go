// clash-arena runs a local AI-vs-AI demo match and renders it live in the
// terminal. Handy for eyeballing movement, tower fire and the win condition
// without standing up the HTTP server.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
	"github.com/Anthonyf2008/clash-royal/internal/game"
)

func main() {
	var (
		seed     = flag.Int64("seed", 42, "RNG seed for both AI players")
		interval = flag.Duration("ai", 1*time.Second, "AI play interval")
	)
	flag.Parse()

	p1 := game.NewPlayer("ai-red", "Red", cards.StarterCards)
	p1.IsAI = true
	p2 := game.NewPlayer("ai-blue", "Blue", cards.StarterCards)
	p2.IsAI = true
	m := game.NewMatch(p1, p2)

	if err := termbox.Init(); err != nil {
		panic(err)
	}
	defer termbox.Close()

	snaps := make(chan game.Snapshot, 1)
	done := make(chan *game.Player, 1)
	m.StartRealtimeLoop(func(s game.Snapshot) {
		select {
		case snaps <- s:
		default:
		}
	}, func(w *game.Player) {
		done <- w
	})

	// Both sides play through the public deploy path.
	go func() {
		rng := game.NewRNG(*seed)
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for range ticker.C {
			if !m.Active() {
				return
			}
			game.AutoPlay(m, p1.ID, rng)
			game.AutoPlay(m, p2.ID, rng)
		}
	}()

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	for {
		select {
		case s := <-snaps:
			draw(s)
		case w := <-done:
			m.End()
			drawText(0, game.DefaultHeight+6, fmt.Sprintf("%s wins! press q to quit", w.Name), termbox.ColorYellow)
			termbox.Flush()
		case ev := <-events:
			if ev.Type == termbox.EventKey && (ev.Ch == 'q' || ev.Key == termbox.KeyEsc) {
				m.End()
				return
			}
		}
	}
}

func cellRune(s game.Snapshot, r, c int) (rune, termbox.Attribute) {
	tile := s.Grid[r][c]
	switch t := tile.(type) {
	case *game.Unit:
		ch := 'u'
		if len(t.Name) > 0 {
			ch = rune(t.Name[0])
		}
		if t.Owner == s.Players[0].ID {
			return ch, termbox.ColorRed
		}
		return ch, termbox.ColorBlue
	case *game.TowerMarker:
		ch := 'T'
		if t.Slot == game.TowerKing {
			ch = 'K'
		}
		if t.Owner == s.Players[0].ID {
			return ch, termbox.ColorRed
		}
		return ch, termbox.ColorBlue
	}
	if c == s.RiverCols[0] || c == s.RiverCols[1] {
		if r == s.BridgeRows[0] || r == s.BridgeRows[1] {
			return '=', termbox.ColorWhite
		}
		return '~', termbox.ColorCyan
	}
	return '.', termbox.ColorDefault
}

func draw(s game.Snapshot) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for r := 0; r < s.Height; r++ {
		termbox.SetCell(0, r+1, rune('A'+r), termbox.ColorWhite, termbox.ColorDefault)
		for c := 0; c < s.Width; c++ {
			ch, fg := cellRune(s, r, c)
			termbox.SetCell(c+2, r+1, ch, fg, termbox.ColorDefault)
		}
	}

	y := s.Height + 2
	for i, p := range s.Players {
		line := fmt.Sprintf("%s energy %2d |", p.Name, p.Energy)
		for _, t := range s.Towers[p.ID] {
			line += fmt.Sprintf(" %s %d", t.Slot, t.HP)
		}
		fg := termbox.ColorRed
		if i == 1 {
			fg = termbox.ColorBlue
		}
		drawText(0, y+i, line, fg)
	}

	termbox.Flush()
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
