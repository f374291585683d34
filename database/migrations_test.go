package database

import "testing"

func TestBackupArgs(t *testing.T) {
	tests := []struct {
		name  string
		flags string
		want  []string
	}{
		{"unset yields no args", "", nil},
		{"single flag", "--single-transaction", []string{"--single-transaction"}},
		{"multiple flags split", "--single-transaction --databases greenwood", []string{"--single-transaction", "--databases", "greenwood"}},
		{"extra whitespace ignored", "  --quick   --no-tablespaces ", []string{"--quick", "--no-tablespaces"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DB_BACKUP_FLAGS", tc.flags)
			got := backupArgs()
			if len(got) != len(tc.want) {
				t.Fatalf("backupArgs() = %q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
