package combobox

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestOpen_ZeroRowsIsNoOp(t *testing.T) {
	cb, rec := newBox(t, newFakeHost(0), DefaultConfig())

	cb.RequestOpen()

	assert.Equal(t, Closed, cb.State())
	assert.False(t, cb.IsOpened())
	assert.Empty(t, rec.events)
}

func TestRequestOpen_MissingProvider(t *testing.T) {
	t.Run("never set", func(t *testing.T) {
		cb := New("bare", DefaultConfig())
		rec := &recorder{}
		cb.Subscribe(rec)

		cb.RequestOpen()

		assert.Equal(t, Closed, cb.State())
		assert.Empty(t, rec.events)
	})

	t.Run("detached", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(3), DefaultConfig())
		cb.DetachDataSource()

		cb.RequestOpen()

		assert.Equal(t, Closed, cb.State())
		assert.Empty(t, rec.events)
	})

	t.Run("unavailable", func(t *testing.T) {
		host := newFakeHost(3)
		host.gone = true
		cb, rec := newBox(t, host, DefaultConfig())

		cb.RequestOpen()

		assert.Equal(t, Closed, cb.State())
		assert.Empty(t, rec.events)
	})
}

func TestRequestOpen_EmitsShowPair(t *testing.T) {
	cb, rec := newBox(t, newFakeHost(5), DefaultConfig())

	cb.RequestOpen()

	require.Equal(t, Open, cb.State())
	assert.True(t, cb.IsOpened())
	assert.Equal(t, []EventKind{WillShow, DidShow}, rec.events)
	assert.Equal(t, 0, cb.Highlighted(), "highlight starts on the first row when nothing is selected")
}

func TestRequestOpen_Idempotent(t *testing.T) {
	cb, rec := newBox(t, newFakeHost(5), DefaultConfig())

	cb.RequestOpen()
	cb.RequestOpen()
	cb.RequestOpen()

	assert.Equal(t, Open, cb.State())
	assert.Equal(t, []EventKind{WillShow, DidShow}, rec.events)
}

func TestRequestClose_WhenClosedIsNoOp(t *testing.T) {
	cb, rec := newBox(t, newFakeHost(5), DefaultConfig())

	cb.RequestClose(true)
	cb.RequestClose(false)

	assert.Equal(t, Closed, cb.State())
	assert.Empty(t, rec.events)
}

func TestCommitVersusCancel(t *testing.T) {
	t.Run("cancel keeps previous selection", func(t *testing.T) {
		host := newFakeHost(5)
		cb, rec := newBox(t, host, DefaultConfig())
		require.NoError(t, cb.SetSelectedIndex(1))

		cb.RequestOpen()
		require.True(t, cb.HighlightRow(3))
		cb.RequestClose(false)

		assert.Equal(t, 1, cb.SelectedIndex())
		assert.Empty(t, host.selected)
		assert.Equal(t, []EventKind{WillShow, DidShow, WillHide, DidHide}, rec.events)
	})

	t.Run("commit selects highlighted row once", func(t *testing.T) {
		host := newFakeHost(5)
		cb, _ := newBox(t, host, DefaultConfig())

		cb.RequestOpen()
		require.True(t, cb.HighlightRow(3))
		cb.RequestClose(true)

		assert.Equal(t, Closed, cb.State())
		assert.Equal(t, 3, cb.SelectedIndex())
		assert.Equal(t, []int{3}, host.selected)
		assert.Equal(t, uint64(1), cb.Commits())
		assert.Equal(t, 3, cb.LastCommitted())
	})

	t.Run("highlight is dropped after close", func(t *testing.T) {
		cb, _ := newBox(t, newFakeHost(5), DefaultConfig())
		cb.RequestOpen()
		cb.HighlightRow(4)
		cb.RequestClose(false)

		assert.Equal(t, NoSelection, cb.Highlighted())
	})
}

func TestOpen_StartsOnCurrentSelection(t *testing.T) {
	cb, _ := newBox(t, newFakeHost(20), DefaultConfig())
	require.NoError(t, cb.SetSelectedIndex(15))

	cb.RequestOpen()

	assert.Equal(t, 15, cb.Highlighted())
	g := cb.Geometry()
	assert.LessOrEqual(t, cb.Offset(), 15)
	assert.Greater(t, cb.Offset()+g.VisibleRows, 15, "selected row should be scrolled into view")
}

func TestSetSelectedIndex(t *testing.T) {
	host := newFakeHost(4)
	cb, _ := newBox(t, host, DefaultConfig())

	require.NoError(t, cb.SetSelectedIndex(2))
	err := cb.SetSelectedIndex(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, 2, cb.SelectedIndex())

	require.NoError(t, cb.SetSelectedIndex(NoSelection))
	assert.Equal(t, NoSelection, cb.SelectedIndex())
	assert.Empty(t, host.selected, "host assignment does not notify the delegate")
}

func TestReopenRevalidatesSelection(t *testing.T) {
	host := newFakeHost(6)
	cb, _ := newBox(t, host, DefaultConfig())
	require.NoError(t, cb.SetSelectedIndex(5))

	host.rows = host.rows[:3]
	cb.RequestOpen()

	assert.Equal(t, NoSelection, cb.SelectedIndex())
	assert.Equal(t, 0, cb.Highlighted())
}

func TestRowsShrinkWhileOpen(t *testing.T) {
	host := newFakeHost(10)
	cb, _ := newBox(t, host, DefaultConfig())
	cb.RequestOpen()
	require.True(t, cb.HighlightRow(8))

	host.rows = host.rows[:4]

	assert.Equal(t, NoSelection, cb.Highlighted(), "out of range highlight renders as none")
	for _, slot := range cb.VisibleRows() {
		assert.False(t, slot.Highlighted)
		assert.Less(t, slot.Row, 4)
	}

	cb.MoveHighlight(1)
	assert.Equal(t, 3, cb.Highlighted(), "next interaction clamps to the last row")

	cb.RequestClose(true)
	assert.Equal(t, 3, cb.SelectedIndex())
	assert.Equal(t, []int{3}, host.selected)
}

func TestCommitAfterRowsVanish(t *testing.T) {
	host := newFakeHost(3)
	cb, _ := newBox(t, host, DefaultConfig())
	cb.RequestOpen()

	host.rows = nil
	cb.RequestClose(true)

	assert.Equal(t, Closed, cb.State())
	assert.Equal(t, NoSelection, cb.SelectedIndex())
	assert.Empty(t, host.selected)
}

func TestNotifyFrameChange(t *testing.T) {
	t.Run("closed is a no-op", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), DefaultConfig())
		cb.RequestOpen()
		cb.RequestClose(false)
		before := cb.Geometry()
		rec.events = nil

		cb.NotifyFrameChange(Rect{X: 10, Y: 10, Width: 5, Height: 1})

		assert.Empty(t, rec.events)
		assert.Equal(t, before, cb.Geometry())
	})

	t.Run("open emits change pair and moves overlay", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), DefaultConfig())
		cb.RequestOpen()
		rec.events = nil

		cb.NotifyFrameChange(Rect{X: 4, Y: 2, Width: 30, Height: 1})

		assert.Equal(t, []EventKind{WillChangeFrame, DidChangeFrame}, rec.events)
		g := cb.Geometry()
		assert.Equal(t, 4, g.Frame.X)
		assert.Equal(t, 3, g.Frame.Y)
		assert.Equal(t, 30, g.Frame.Width)
	})

	t.Run("frames carried by events", func(t *testing.T) {
		cb, _ := newBox(t, newFakeHost(5), DefaultConfig())
		var frames []Rect
		cb.Subscribe(ObserverFunc(func(ev Event) {
			if ev.Kind == WillChangeFrame || ev.Kind == DidChangeFrame {
				frames = append(frames, ev.Frame)
			}
		}))
		cb.RequestOpen()
		cb.NotifyFrameChange(Rect{X: 7, Y: 0, Width: 20, Height: 1})

		require.Len(t, frames, 2)
		assert.Equal(t, 0, frames[0].X)
		assert.Equal(t, 7, frames[1].X)
	})
}

func TestGeometryHonoursMaxHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPickerHeight = 6
	cfg.ValidateButton = true
	cb, _ := newBox(t, newFakeHost(50), cfg)

	cb.RequestOpen()

	g := cb.Geometry()
	assert.Equal(t, 6, g.Height)
	assert.True(t, g.HasToolbar)
	assert.Equal(t, 5, g.VisibleRows)
}

func TestRowHeightLoadedOncePerOpen(t *testing.T) {
	host := newFakeHost(4)
	host.height = 2
	cb, _ := newBox(t, host, DefaultConfig())

	cb.RequestOpen()
	host.height = 5
	assert.Equal(t, 2, cb.RowHeight())
	cb.RequestClose(false)

	cb.RequestOpen()
	assert.Equal(t, 5, cb.RowHeight())
}

func TestReentrantCloseFromObserverIsDeferred(t *testing.T) {
	cb, rec := newBox(t, newFakeHost(5), DefaultConfig())
	var statesSeen []State
	cb.Subscribe(ObserverFunc(func(ev Event) {
		statesSeen = append(statesSeen, ev.Source.State())
		if ev.Kind == WillShow {
			ev.Source.RequestClose(false)
			assert.Equal(t, Opening, ev.Source.State(), "close must not run inline")
		}
	}))

	cb.RequestOpen()

	assert.Equal(t, Closed, cb.State())
	assert.Equal(t, []EventKind{WillShow, DidShow, WillHide, DidHide}, rec.events)
	assert.Equal(t, []State{Opening, Open, Closing, Closed}, statesSeen)
	assert.Zero(t, cb.Pending())
}

func TestReentrantOpenFromDelegateIsDeferred(t *testing.T) {
	host := newFakeHost(3)
	cb, rec := newBox(t, host, DefaultConfig())
	reopened := false
	cb.SetDelegate(DelegateFuncs{
		Title: host.TitleForRow,
		OnSelect: func(c *ComboBox, row int) {
			if !reopened {
				reopened = true
				c.RequestOpen()
			}
		},
	})

	cb.RequestOpen()
	cb.Confirm()

	assert.Equal(t, Open, cb.State())
	assert.Equal(t, []EventKind{WillShow, DidShow, WillHide, DidHide, WillShow, DidShow}, rec.events)
}

func TestAnimatedTransitions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TransitionDuration = 150 * time.Millisecond

	t.Run("open waits for completion", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), cfg)

		cb.RequestOpen()
		assert.Equal(t, Opening, cb.State())
		assert.True(t, cb.IsOpened())
		assert.Equal(t, []EventKind{WillShow}, rec.events)

		cb.RequestOpen()
		cb.CompleteTransition()
		assert.Equal(t, Open, cb.State())
		assert.Equal(t, []EventKind{WillShow, DidShow}, rec.events)
	})

	t.Run("close during opening runs after open completes", func(t *testing.T) {
		host := newFakeHost(5)
		cb, rec := newBox(t, host, cfg)

		cb.RequestOpen()
		cb.RequestClose(true)
		assert.Equal(t, Opening, cb.State(), "in-flight transition is never aborted")
		assert.Equal(t, 1, cb.Pending())

		cb.CompleteTransition()
		assert.Equal(t, Closing, cb.State())
		assert.Equal(t, []int{0}, host.selected)

		cb.CompleteTransition()
		assert.Equal(t, Closed, cb.State())
		assert.Equal(t, []EventKind{WillShow, DidShow, WillHide, DidHide}, rec.events)
	})

	t.Run("open during closing is replayed", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), cfg)
		cb.RequestOpen()
		cb.CompleteTransition()

		cb.RequestClose(false)
		cb.RequestOpen()
		cb.RequestClose(false)
		assert.Equal(t, Closing, cb.State())

		cb.CompleteTransition()
		assert.Equal(t, Opening, cb.State())
		cb.CompleteTransition()
		assert.Equal(t, Closing, cb.State(), "queued close follows the replayed open")
		cb.CompleteTransition()

		assert.Equal(t, Closed, cb.State())
		assert.Equal(t, []EventKind{
			WillShow, DidShow, WillHide, DidHide,
			WillShow, DidShow, WillHide, DidHide,
		}, rec.events)
	})

	t.Run("open queued behind a close during opening runs second", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), cfg)

		cb.RequestOpen()
		cb.RequestClose(false)
		cb.RequestOpen()
		assert.Equal(t, Opening, cb.State())
		assert.Equal(t, 2, cb.Pending())

		cb.CompleteTransition()
		assert.Equal(t, Closing, cb.State())
		cb.CompleteTransition()
		assert.Equal(t, Opening, cb.State(), "queued open replays after the close")
		cb.CompleteTransition()

		assert.Equal(t, Open, cb.State())
		assert.Zero(t, cb.Pending())
		assert.Equal(t, []EventKind{
			WillShow, DidShow, WillHide, DidHide,
			WillShow, DidShow,
		}, rec.events)
	})

	t.Run("complete when settled is a no-op", func(t *testing.T) {
		cb, rec := newBox(t, newFakeHost(5), cfg)
		cb.CompleteTransition()
		assert.Equal(t, Closed, cb.State())
		assert.Empty(t, rec.events)
	})
}

func TestPanickingObserverDoesNotBreakTransitions(t *testing.T) {
	cb, _ := newBox(t, newFakeHost(5), DefaultConfig())
	cb.Subscribe(ObserverFunc(func(Event) { panic("boom") }))
	after := &recorder{}
	cb.Subscribe(after)

	cb.RequestOpen()
	cb.HighlightRow(2)
	cb.Confirm()

	assert.Equal(t, Closed, cb.State())
	assert.Equal(t, 2, cb.SelectedIndex())
	assert.Equal(t, []EventKind{WillShow, DidShow, WillHide, DidHide}, after.events)
}

// TestRandomSequences drives the control with random calls and checks the
// state machine and selection invariants after every step.
func TestRandomSequences(t *testing.T) {
	for _, animated := range []bool{false, true} {
		cfg := DefaultConfig()
		if animated {
			cfg.TransitionDuration = time.Millisecond
		}
		rng := rand.New(rand.NewSource(42))
		host := newFakeHost(5)
		cb := New("fuzz", cfg)
		cb.SetDataSource(host)
		cb.SetDelegate(host)

		var cycle []EventKind
		cb.Subscribe(ObserverFunc(func(ev Event) {
			switch ev.Kind {
			case WillShow:
				require.Empty(t, cycle, "WillShow must start a fresh cycle")
				cycle = append(cycle, ev.Kind)
			case DidShow:
				require.Equal(t, []EventKind{WillShow}, cycle)
				cycle = append(cycle, ev.Kind)
			case WillHide:
				require.Equal(t, []EventKind{WillShow, DidShow}, cycle)
				cycle = append(cycle, ev.Kind)
			case DidHide:
				require.Equal(t, []EventKind{WillShow, DidShow, WillHide}, cycle)
				cycle = nil
			}
		}))

		for step := 0; step < 2000; step++ {
			switch rng.Intn(8) {
			case 0:
				cb.RequestOpen()
			case 1:
				cb.RequestClose(rng.Intn(2) == 0)
			case 2:
				cb.CompleteTransition()
			case 3:
				cb.MoveHighlight(rng.Intn(5) - 2)
			case 4:
				_ = cb.SetSelectedIndex(rng.Intn(9) - 2)
			case 5:
				n := rng.Intn(8)
				host.rows = newFakeHost(n).rows
			case 6:
				cb.NotifyFrameChange(Rect{X: rng.Intn(10), Y: rng.Intn(10), Width: 20, Height: 1})
			case 7:
				cb.TapRow(rng.Intn(6))
			}

			s := cb.State()
			require.Contains(t, []State{Closed, Opening, Open, Closing}, s)
			if !animated {
				require.Contains(t, []State{Closed, Open}, s, "synchronous transitions always settle")
			}
			sel := cb.SelectedIndex()
			require.True(t, sel == NoSelection || (sel >= 0 && sel < cb.sel.RowCount()),
				"selection %d outside [0,%d)", sel, cb.sel.RowCount())
		}
	}
}
