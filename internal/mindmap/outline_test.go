package mindmap

import "testing"

func TestOutline(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     OutlineStats
		conforms bool
	}{
		{
			name:     "three levels",
			markdown: "# A\n- B\n  - C\n  - D\n- E",
			want:     OutlineStats{Headings: 1, Bullets: 4, Depth: 3},
			conforms: true,
		},
		{
			name:     "too deep",
			markdown: "# A\n- B\n  - C\n    - D",
			want:     OutlineStats{Headings: 1, Bullets: 3, Depth: 4},
		},
		{
			name:     "no heading",
			markdown: "- B\n  - C",
			want:     OutlineStats{Bullets: 2, Depth: 2},
		},
		{
			name:     "two headings",
			markdown: "# A\n# B",
			want:     OutlineStats{Headings: 2, Depth: 1},
		},
		{
			name:     "tab indent",
			markdown: "# A\n- B\n\t- C",
			want:     OutlineStats{Headings: 1, Bullets: 2, Depth: 3},
			conforms: true,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Outline(tt.markdown)
			if got != tt.want {
				t.Errorf("Outline() = %+v, want %+v", got, tt.want)
			}
			if got.Conforms() != tt.conforms {
				t.Errorf("Conforms() = %v, want %v", got.Conforms(), tt.conforms)
			}
		})
	}
}
