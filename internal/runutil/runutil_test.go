package runutil

import "testing"

func TestValidateChunking(t *testing.T) {
	if cs, warns := ValidateChunking(0, false, 5000); cs != 5000 || len(warns) != 0 {
		t.Fatalf("plain chunking: got %d, %v", cs, warns)
	}
	if cs, warns := ValidateChunking(100, false, 5000); cs != 0 || len(warns) != 1 {
		t.Fatalf("window should disable chunking with warning: got %d, %v", cs, warns)
	}
	if cs, warns := ValidateChunking(0, true, 5000); cs != 0 || len(warns) != 1 {
		t.Fatalf("cpg should disable chunking with warning: got %d, %v", cs, warns)
	}
	if cs, warns := ValidateChunking(100, false, 0); cs != 0 || len(warns) != 0 {
		t.Fatalf("window without chunk-size should stay silent: got %d, %v", cs, warns)
	}
	if cs, _ := ValidateChunking(0, false, 0); cs != 0 {
		t.Fatalf("no chunking requested: got %d", cs)
	}
}
