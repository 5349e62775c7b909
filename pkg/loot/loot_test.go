package loot_test

import (
	"encoding/json"
	"testing"

	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/loot"
)

// --- Loot Table Tests ---

func TestDropSelfJSON(t *testing.T) {
	table := loot.DropSelf(id.MustParse("mosbergapi:ruby_block"))

	got, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"minecraft:block","pools":[{"rolls":1,"entries":[{"type":"minecraft:item","name":"mosbergapi:ruby_block"}],"conditions":[{"condition":"minecraft:survives_explosion"}]}]}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestDropItemJSON(t *testing.T) {
	table := loot.DropItem(id.MustParse("mosbergapi:ruby"), 1, 3)

	got, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"minecraft:block","pools":[{"rolls":1,"entries":[{"type":"minecraft:item","name":"mosbergapi:ruby","functions":[{"count":{"max":3,"min":1},"function":"minecraft:set_count"}]}],"conditions":[{"condition":"minecraft:survives_explosion"}]}]}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestDropItemSingleCountHasNoFunction(t *testing.T) {
	table := loot.DropItem(id.MustParse("mosbergapi:ruby"), 1, 1)
	if fns := table.Pools[0].Entries[0].Functions; len(fns) != 0 {
		t.Errorf("DropItem(1, 1) attached functions %v, want none", fns)
	}
}

func TestRollsJSON(t *testing.T) {
	cases := []struct {
		name  string
		rolls loot.Rolls
		want  string
	}{
		{"constant", loot.ConstantRolls(2), `2`},
		{"uniform", loot.UniformRolls(1, 4), `{"min":1,"max":4}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.rolls)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("Marshal() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSetCountConstant(t *testing.T) {
	got, err := json.Marshal(loot.SetCount(4, 4))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"count":4,"function":"minecraft:set_count"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
