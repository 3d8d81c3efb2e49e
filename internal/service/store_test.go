package service

import (
	"fmt"
	"sync"
	"testing"

	"chat_relay/internal/models"
)

// TestGetOrCreateConcurrentFirstJoin 驗證同一個代碼的併發首次加入只會建立一個房間
func TestGetOrCreateConcurrentFirstJoin(t *testing.T) {
	store := NewRoomStore(100)

	const workers = 50
	results := make(chan *models.Room, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.GetOrCreate("ABCD1234")
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	for room := range results {
		if room != first {
			t.Fatal("concurrent GetOrCreate returned different Room instances")
		}
	}
}

func TestHistoryCapEviction(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("ABCD1234", "c1")

	for i := 1; i <= 101; i++ {
		store.AppendMessage("ABCD1234", models.Message{ID: fmt.Sprintf("m%d", i)})
	}

	history := store.SnapshotHistory("ABCD1234")
	if len(history) != 100 {
		t.Fatalf("history length = %d, want 100", len(history))
	}
	if history[0].ID != "m2" {
		t.Errorf("oldest message = %q, want m2", history[0].ID)
	}
	if history[99].ID != "m101" {
		t.Errorf("newest message = %q, want m101", history[99].ID)
	}
	// 剩餘的訊息必須連續且保持原本順序
	for i, msg := range history {
		if want := fmt.Sprintf("m%d", i+2); msg.ID != want {
			t.Fatalf("history[%d].ID = %q, want %q", i, msg.ID, want)
		}
	}
}

func TestAppendMessageToMissingRoom(t *testing.T) {
	store := NewRoomStore(100)

	// 不存在的房間：訊息不入檔，也不會因此建立房間
	store.AppendMessage("GHOST", models.Message{ID: "m1"})

	if store.Exists("GHOST") {
		t.Error("AppendMessage should not create a room")
	}
	if history := store.SnapshotHistory("GHOST"); len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("ABCD1234", "c1")

	store.Remove("ABCD1234")
	store.Remove("ABCD1234") // 已不存在，仍然安全

	if store.Exists("ABCD1234") {
		t.Error("room should be gone after Remove")
	}
}

func TestRemoveMemberCollectsEmptyRoom(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("ABCD1234", "c1")
	store.AppendMessage("ABCD1234", models.Message{ID: "m1"})

	removed, remaining := store.RemoveMember("ABCD1234", "c1")
	if !removed || remaining != 0 {
		t.Fatalf("RemoveMember = (%v, %d), want (true, 0)", removed, remaining)
	}
	if store.Exists("ABCD1234") {
		t.Error("empty room should be evicted from the store")
	}

	// 重新取得同一個代碼必須是全新的空房間，歷史不得殘留
	room := store.GetOrCreate("ABCD1234")
	if room.MemberCount() != 0 || room.MessageCount() != 0 {
		t.Error("re-created room should start empty")
	}
}

func TestRemoveMemberMissing(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("ABCD1234", "c1")

	if removed, _ := store.RemoveMember("ABCD1234", "ghost"); removed {
		t.Error("removing a non-member should report false")
	}
	if removed, _ := store.RemoveMember("GHOST", "c1"); removed {
		t.Error("removing from a missing room should report false")
	}
}

func TestSnapshotHistoryIsDefensiveCopy(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("ABCD1234", "c1")
	store.AppendMessage("ABCD1234", models.Message{ID: "m1"})

	snapshot := store.SnapshotHistory("ABCD1234")
	snapshot[0].ID = "changed"

	if got := store.SnapshotHistory("ABCD1234")[0].ID; got != "m1" {
		t.Errorf("history mutated through snapshot: ID = %q, want m1", got)
	}
}

func TestSummaries(t *testing.T) {
	store := NewRoomStore(100)
	store.AddMember("BBBB0000", "c1")
	store.AddMember("AAAA0000", "c2")
	store.AddMember("AAAA0000", "c3")
	store.AppendMessage("AAAA0000", models.Message{ID: "m1"})

	summaries := store.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("summaries length = %d, want 2", len(summaries))
	}
	// 依代碼排序
	if summaries[0].Code != "AAAA0000" || summaries[1].Code != "BBBB0000" {
		t.Errorf("summaries order = [%s, %s], want [AAAA0000, BBBB0000]", summaries[0].Code, summaries[1].Code)
	}
	if summaries[0].MemberCount != 2 || summaries[0].MessageCount != 1 {
		t.Errorf("AAAA0000 summary = %+v, want 2 members and 1 message", summaries[0])
	}
}
