package shared

import (
	"strings"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	original := getRuntime
	t.Cleanup(func() { getRuntime = original })

	tc := []struct {
		goos    string
		want    string
		wantErr bool
	}{
		{goos: "darwin", want: "open http://127.0.0.1:3000"},
		{goos: "linux", want: "xdg-open http://127.0.0.1:3000"},
		{goos: "windows", want: "cmd /c start http://127.0.0.1:3000"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.goos, func(t *testing.T) {
			getRuntime = func() string { return tt.goos }

			cmd, err := browserCommand("http://127.0.0.1:3000")
			if (err != nil) != tt.wantErr {
				t.Fatalf("browserCommand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := strings.Join(cmd.Args, " "); got != tt.want {
				t.Errorf("browserCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}
