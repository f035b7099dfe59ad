package prefabs

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestRelevantEvents(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"spec write", fsnotify.Event{Name: "prefabs/room.yaml", Op: fsnotify.Write}, true},
		{"yml create", fsnotify.Event{Name: "prefabs/room.yml", Op: fsnotify.Create}, true},
		{"script rename", fsnotify.Event{Name: "prefabs/scripts/patrol.tengo", Op: fsnotify.Rename}, true},
		{"spec remove", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Remove}, true},
		{"chmod ignored", fsnotify.Event{Name: "prefabs/room.yaml", Op: fsnotify.Chmod}, false},
		{"editor temp file", fsnotify.Event{Name: "prefabs/.room.yaml.swp", Op: fsnotify.Write}, false},
		{"unrelated extension", fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
