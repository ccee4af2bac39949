package disgear

import (
	"errors"
	"sync"
	"testing"

	"github.com/disgear/disgear/event"
)

func TestGear_AddListener_Validation(t *testing.T) {
	g := NewGear("test")

	if _, err := g.AddListener("", nopHandler); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("AddListener(empty kind) = %v, want ErrInvalidKind", err)
	}
	if _, err := g.AddListener("PING", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("AddListener(nil handler) = %v, want ErrNilHandler", err)
	}
}

func TestGear_ListenerCountAndKinds(t *testing.T) {
	g := NewGear("test")

	for i := 0; i < 3; i++ {
		if _, err := g.AddListener("PING", nopHandler); err != nil {
			t.Fatalf("AddListener() failed: %v", err)
		}
	}
	if _, err := g.AddListener("PONG", nopHandler); err != nil {
		t.Fatalf("AddListener() failed: %v", err)
	}

	if got := g.ListenerCount("PING"); got != 3 {
		t.Errorf("ListenerCount(PING) = %d, want 3", got)
	}
	if got := len(g.Kinds()); got != 2 {
		t.Errorf("len(Kinds()) = %d, want 2", got)
	}
}

func TestGear_RemoveAll(t *testing.T) {
	g := NewGear("test")

	g.AddListener("PING", nopHandler)
	g.AddListener("PING", nopHandler)
	g.AddListener("PONG", nopHandler)

	if got := g.RemoveAll("PING"); got != 2 {
		t.Errorf("RemoveAll(PING) = %d, want 2", got)
	}
	if got := g.ListenerCount("PING"); got != 0 {
		t.Errorf("ListenerCount(PING) after RemoveAll = %d, want 0", got)
	}
	if got := g.ListenerCount("PONG"); got != 1 {
		t.Errorf("ListenerCount(PONG) = %d, want 1", got)
	}
	if got := g.RemoveAll("PING"); got != 0 {
		t.Errorf("second RemoveAll(PING) = %d, want 0", got)
	}
}

func TestListener_Remove_Idempotent(t *testing.T) {
	g := NewGear("test")

	l, err := g.AddListener("PING", nopHandler)
	if err != nil {
		t.Fatalf("AddListener() failed: %v", err)
	}
	if l.Kind() != "PING" {
		t.Errorf("Kind() = %q, want PING", l.Kind())
	}
	if l.ID() == "" {
		t.Error("expected a non-empty registration id")
	}

	l.Remove()
	if got := g.ListenerCount("PING"); got != 0 {
		t.Errorf("ListenerCount after Remove = %d, want 0", got)
	}

	// Second removal must be a silent no-op.
	l.Remove()
}

func TestListener_Remove_ExactRegistration(t *testing.T) {
	g := NewGear("test")

	l1, _ := g.AddListener("PING", nopHandler)
	l2, _ := g.AddListener("PING", nopHandler)

	l1.Remove()

	regs := g.table.lookup("PING")
	if len(regs) != 1 {
		t.Fatalf("got %d registrations, want 1", len(regs))
	}
	if regs[0].id != l2.ID() {
		t.Error("wrong registration removed")
	}
}

func TestTable_CollectOrder(t *testing.T) {
	g := NewGear("test")

	var a, b, c *Listener
	a, _ = g.AddListener("PING", nopHandler)
	b, _ = g.AddListener("PING", nopHandler)
	c, _ = g.AddListener("PING", nopHandler)

	regs := g.table.collect("PING", pingEvent{})
	if len(regs) != 3 {
		t.Fatalf("collect() returned %d registrations, want 3", len(regs))
	}
	want := []string{a.ID(), b.ID(), c.ID()}
	for i, r := range regs {
		if r.id != want[i] {
			t.Errorf("collect()[%d] = %s, want %s (insertion order)", i, r.id, want[i])
		}
	}
}

func TestTable_CollectOnceConsumes(t *testing.T) {
	g := NewGear("test")
	g.AddListener("PING", nopHandler, WithOnce())

	first := g.table.collect("PING", pingEvent{})
	if len(first) != 1 {
		t.Fatalf("first collect() returned %d, want 1", len(first))
	}
	second := g.table.collect("PING", pingEvent{})
	if len(second) != 0 {
		t.Errorf("second collect() returned %d, want 0", len(second))
	}
	if got := g.ListenerCount("PING"); got != 0 {
		t.Errorf("ListenerCount after consumption = %d, want 0", got)
	}
}

func TestTable_CollectOnce_Concurrent(t *testing.T) {
	g := NewGear("test")
	g.AddListener("PING", nopHandler, WithOnce())

	const dispatchers = 16
	var (
		start sync.WaitGroup
		done  sync.WaitGroup
		mu    sync.Mutex
		fired int
	)
	start.Add(1)
	done.Add(dispatchers)
	for i := 0; i < dispatchers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			n := len(g.table.collect("PING", pingEvent{}))
			mu.Lock()
			fired += n
			mu.Unlock()
		}()
	}
	start.Done()
	done.Wait()

	if fired != 1 {
		t.Errorf("once-listener collected %d times across concurrent dispatches, want 1", fired)
	}
}

func TestTable_CollectFilter_DoesNotConsumeOnce(t *testing.T) {
	g := NewGear("test")
	g.AddListener("PING", nopHandler,
		WithOnce(),
		WithFilter(func(ev event.Event) bool {
			p, ok := ev.(pingEvent)
			return ok && p.Seq > 0
		}),
	)

	if got := len(g.table.collect("PING", pingEvent{Seq: 0})); got != 0 {
		t.Fatalf("rejected event fired %d listeners, want 0", got)
	}
	if got := g.ListenerCount("PING"); got != 1 {
		t.Fatalf("rejected event consumed the once-listener")
	}

	if got := len(g.table.collect("PING", pingEvent{Seq: 1})); got != 1 {
		t.Errorf("accepted event fired %d listeners, want 1", got)
	}
	if got := g.ListenerCount("PING"); got != 0 {
		t.Errorf("once-listener not consumed after firing")
	}
}

func TestGear_AttachDetach(t *testing.T) {
	parent := NewGear("parent")
	child := NewGear("child")

	if err := parent.AttachGear(child); err != nil {
		t.Fatalf("AttachGear() failed: %v", err)
	}
	if got := child.Parent(); got != parent {
		t.Error("child's parent not set")
	}
	if kids := parent.Children(); len(kids) != 1 || kids[0] != child {
		t.Errorf("Children() = %v", kids)
	}

	if err := parent.DetachGear(child); err != nil {
		t.Fatalf("DetachGear() failed: %v", err)
	}
	if child.Parent() != nil {
		t.Error("child's parent not cleared")
	}
	if len(parent.Children()) != 0 {
		t.Error("child still listed after detach")
	}
}

func TestGear_AttachGear_Errors(t *testing.T) {
	a := NewGear("a")
	b := NewGear("b")
	c := NewGear("c")

	t.Run("nil child", func(t *testing.T) {
		if err := a.AttachGear(nil); !errors.Is(err, ErrNilGear) {
			t.Errorf("AttachGear(nil) = %v, want ErrNilGear", err)
		}
	})

	t.Run("self attach", func(t *testing.T) {
		if err := a.AttachGear(a); !errors.Is(err, ErrCyclicAttach) {
			t.Errorf("AttachGear(self) = %v, want ErrCyclicAttach", err)
		}
	})

	t.Run("double attach", func(t *testing.T) {
		if err := a.AttachGear(b); err != nil {
			t.Fatalf("AttachGear() failed: %v", err)
		}
		if err := c.AttachGear(b); !errors.Is(err, ErrAlreadyAttached) {
			t.Errorf("second AttachGear() = %v, want ErrAlreadyAttached", err)
		}
	})

	t.Run("ancestor cycle", func(t *testing.T) {
		if err := b.AttachGear(c); err != nil {
			t.Fatalf("AttachGear() failed: %v", err)
		}
		// a -> b -> c; attaching a beneath c closes a loop.
		if err := c.AttachGear(a); !errors.Is(err, ErrCyclicAttach) {
			t.Errorf("AttachGear(ancestor) = %v, want ErrCyclicAttach", err)
		}
		// The failed attach must not leave a claimed parent behind.
		if a.Parent() != nil {
			t.Error("failed attach left the parent slot claimed")
		}
	})
}

func TestGear_DetachGear_Errors(t *testing.T) {
	a := NewGear("a")
	b := NewGear("b")

	if err := a.DetachGear(nil); !errors.Is(err, ErrNilGear) {
		t.Errorf("DetachGear(nil) = %v, want ErrNilGear", err)
	}
	if err := a.DetachGear(b); !errors.Is(err, ErrNotAttached) {
		t.Errorf("DetachGear(stranger) = %v, want ErrNotAttached", err)
	}
}

func TestGear_ReattachAfterDetach(t *testing.T) {
	a := NewGear("a")
	b := NewGear("b")
	child := NewGear("child")

	if err := a.AttachGear(child); err != nil {
		t.Fatalf("AttachGear() failed: %v", err)
	}
	if err := a.DetachGear(child); err != nil {
		t.Fatalf("DetachGear() failed: %v", err)
	}
	if err := b.AttachGear(child); err != nil {
		t.Errorf("reattach after detach failed: %v", err)
	}
}

func TestGear_WalkPreOrder(t *testing.T) {
	root := NewGear("root")
	g1 := NewGear("g1")
	g2 := NewGear("g2")
	g1a := NewGear("g1a")

	root.AttachGear(g1)
	root.AttachGear(g2)
	g1.AttachGear(g1a)

	var visited []string
	root.walk(func(g *Gear) {
		visited = append(visited, g.Name())
	})

	want := []string{"root", "g1", "g1a", "g2"}
	if len(visited) != len(want) {
		t.Fatalf("walk visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("walk order %v, want %v", visited, want)
			break
		}
	}
}

func TestGear_CollectSpansSubtree(t *testing.T) {
	root := NewGear("root")
	g1 := NewGear("g1")
	g2 := NewGear("g2")
	root.AttachGear(g1)
	g1.AttachGear(g2)

	root.AddListener("PING", nopHandler)
	g1.AddListener("PING", nopHandler)
	g2.AddListener("PING", nopHandler)
	g2.AddListener("PONG", nopHandler)

	invs := root.collect(pingEvent{})
	if len(invs) != 3 {
		t.Fatalf("collect() returned %d invocations, want 3", len(invs))
	}
	wantGears := []string{"root", "g1", "g2"}
	for i, inv := range invs {
		if inv.gear != wantGears[i] {
			t.Errorf("invocation %d attributed to %q, want %q", i, inv.gear, wantGears[i])
		}
	}
}

func TestGear_ConcurrentAttachBothDirections(t *testing.T) {
	// Two gears racing to attach each other must not deadlock; at least
	// one attachment must fail.
	for i := 0; i < 100; i++ {
		a := NewGear("a")
		b := NewGear("b")

		var wg sync.WaitGroup
		wg.Add(2)
		errs := make([]error, 2)
		go func() {
			defer wg.Done()
			errs[0] = a.AttachGear(b)
		}()
		go func() {
			defer wg.Done()
			errs[1] = b.AttachGear(a)
		}()
		wg.Wait()

		if errs[0] == nil && errs[1] == nil {
			t.Fatal("both cross-attachments succeeded; cycle created")
		}
	}
}
