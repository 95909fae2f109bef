package wire

// SortedNumbersOutput wraps a SortedNumbers step in its Output envelope.
func SortedNumbersOutput(s SortedNumbers) Output {
	return Output{Type: OutputSortedNumbers, SortedNumbers: &s}
}

// DistPathCreationOutput wraps a point-based PathCreation step.
func DistPathCreationOutput(p DistPathCreation) Output {
	return Output{Type: OutputDistPathCreation, DistPathCreation: &p}
}

// DistPathImprovementOutput wraps a point-based PathImprovement step.
func DistPathImprovementOutput(p DistPathImprovement) Output {
	return Output{Type: OutputDistPathImprovement, DistPathImprovement: &p}
}

// PathCreationOutput wraps a matrix-based PathCreation step.
func PathCreationOutput(p PathCreation) Output {
	return Output{Type: OutputPathCreation, PathCreation: &p}
}

// PathImprovementOutput wraps a matrix-based PathImprovement step.
func PathImprovementOutput(p PathImprovement) Output {
	return Output{Type: OutputPathImprovement, PathImprovement: &p}
}

// ErrorOutput wraps an ErrorRecord in its Output envelope.
func ErrorOutput(e ErrorRecord) Output {
	return Output{Type: OutputError, Error: &e}
}

// LatencyOutput wraps a latency echo in its Output envelope.
func LatencyOutput(millis uint64) Output {
	return Output{Type: OutputLatency, Latency: &LatencyRecord{TimeMillis: millis}}
}

// LogOutput wraps a diagnostic echo in its Output envelope.
func LogOutput(message string) Output {
	return Output{Type: OutputLog, Log: &LogRecord{Message: message}}
}
