package event

import "testing"

func TestDispatchReachesAllSubscribers(t *testing.T) {
	m := NewManager()

	var got []string
	m.Subscribe(TypeDocModified, func(e Event) bool {
		data := e.Data.(DocModifiedData)
		got = append(got, "a:"+data.UnitID)
		return false
	})
	m.Subscribe(TypeDocModified, func(e Event) bool {
		got = append(got, "b")
		return false
	})
	m.Subscribe(TypeAppQuit, func(e Event) bool {
		got = append(got, "quit")
		return false
	})

	m.Dispatch(TypeDocModified, DocModifiedData{UnitID: "u1"})
	if len(got) != 2 || got[0] != "a:u1" || got[1] != "b" {
		t.Fatalf("unexpected handler calls: %v", got)
	}
}

func TestDispatchWithoutSubscribersIsSafe(t *testing.T) {
	m := NewManager()
	m.Dispatch(TypeSelectionMoved, SelectionMovedData{UnitID: "u1"})
}

func TestSubscribeDuringDispatchDoesNotAffectCurrentWalk(t *testing.T) {
	m := NewManager()

	calls := 0
	m.Subscribe(TypeAppReady, func(e Event) bool {
		calls++
		m.Subscribe(TypeAppReady, func(e Event) bool {
			calls += 100
			return false
		})
		return false
	})

	m.Dispatch(TypeAppReady, AppReadyData{})
	if calls != 1 {
		t.Fatalf("late subscriber must not see the in-flight event, calls=%d", calls)
	}
}
