package team

import (
	"reflect"
	"testing"
)

func TestAddMemberID(t *testing.T) {
	tests := []struct {
		name      string
		memberIDs []string
		id        string
		want      []string
	}{
		{"append new member", []string{"a"}, "c", []string{"a", "c"}},
		{"existing member is a no-op", []string{"a", "b"}, "a", []string{"a", "b"}},
		{"empty list", nil, "a", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMemberID(tt.memberIDs, tt.id); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AddMemberID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddMemberIDIdempotent(t *testing.T) {
	once := AddMemberID([]string{"a", "b"}, "c")
	twice := AddMemberID(once, "c")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("adding twice changed the list: %v != %v", once, twice)
	}
}

func TestRemoveMemberID(t *testing.T) {
	tests := []struct {
		name      string
		memberIDs []string
		id        string
		want      []string
	}{
		{"remove existing member", []string{"a", "b"}, "a", []string{"b"}},
		{"absent member is a no-op", []string{"a", "b"}, "z", []string{"a", "b"}},
		{"order preserved", []string{"a", "b", "c"}, "b", []string{"a", "c"}},
		{"empty list", nil, "a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveMemberID(tt.memberIDs, tt.id); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RemoveMemberID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveMemberIDIdempotent(t *testing.T) {
	once := RemoveMemberID([]string{"a", "b"}, "a")
	twice := RemoveMemberID(once, "a")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("removing twice changed the list: %v != %v", once, twice)
	}
}
