package report

import "testing"

func TestExtractSummary_InstructionsBoundary(t *testing.T) {
	got := ExtractSummary("Summary here. Instructions: do X")
	if got != "Summary here." {
		t.Errorf("expected %q, got %q", "Summary here.", got)
	}
}

func TestExtractSummary_NoBoundaryReturnsTrimmedOriginal(t *testing.T) {
	got := ExtractSummary("  The portfolio outperformed its benchmark this quarter.  ")
	want := "The portfolio outperformed its benchmark this quarter."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractSummary_NumberedListBoundary(t *testing.T) {
	got := ExtractSummary("Strong quarter overall. 1. First item")
	if got != "Strong quarter overall." {
		t.Errorf("expected text before numbered list, got %q", got)
	}
}

func TestExtractSummary_CapitalizedWordColonBoundary(t *testing.T) {
	got := ExtractSummary("Good quarter for the fund. Notes: internal only")
	if got != "Good quarter for the fund." {
		t.Errorf("expected text before capitalized-word colon, got %q", got)
	}
}

func TestExtractSummary_FirstBoundaryWins(t *testing.T) {
	got := ExtractSummary("Lead text. Notes: middle. Instructions: tail")
	if got != "Lead text." {
		t.Errorf("expected clip at first boundary, got %q", got)
	}
}

func TestExtractSummary_MultilineBoundary(t *testing.T) {
	text := "The fund returned 12.4% net of fees,\nahead of its benchmark.\n\nInstructions:\n- Clearly state performance"
	got := ExtractSummary(text)
	want := "The fund returned 12.4% net of fees,\nahead of its benchmark."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractSummary_EmptyText(t *testing.T) {
	if got := ExtractSummary(""); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}
