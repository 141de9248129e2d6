package domain

// InspectionPhase identifies which inspection pass a photo belongs to.
type InspectionPhase string

const (
	InspectionPhaseInitial InspectionPhase = "initial"
	InspectionPhaseFinal   InspectionPhase = "final"
)

func (p InspectionPhase) String() string { return string(p) }

func (p InspectionPhase) IsValid() bool {
	switch p {
	case InspectionPhaseInitial, InspectionPhaseFinal:
		return true
	}
	return false
}

// RetentionPolicy selects how a retention run decides which photos are excess.
type RetentionPolicy string

const (
	// RetentionPolicyDedup keeps the oldest copy of each exact duplicate.
	RetentionPolicyDedup RetentionPolicy = "dedup"
	// RetentionPolicyCap keeps at most N photos per annotation and phase.
	RetentionPolicyCap RetentionPolicy = "cap"
)

func (p RetentionPolicy) String() string { return string(p) }

func (p RetentionPolicy) IsValid() bool {
	switch p {
	case RetentionPolicyDedup, RetentionPolicyCap:
		return true
	}
	return false
}

// RunMode controls whether a retention run mutates the store.
type RunMode string

const (
	RunModeSimulate    RunMode = "simulate"
	RunModeDestructive RunMode = "destructive"
)

func (m RunMode) String() string { return string(m) }

func (m RunMode) IsValid() bool {
	switch m {
	case RunModeSimulate, RunModeDestructive:
		return true
	}
	return false
}

// RunModeFromDryRun maps the dry-run flag used by callers onto a RunMode.
func RunModeFromDryRun(dryRun bool) RunMode {
	if dryRun {
		return RunModeSimulate
	}
	return RunModeDestructive
}
