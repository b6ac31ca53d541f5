package holdem

import "github.com/sirupsen/logrus"

// log is the package-level diagnostic logger, used the way
// philipjkim-pls7-cli's pkg/engine and pkg/poker packages call logrus
// directly from domain code: no logger is threaded through function
// signatures, since these are debug/trace breadcrumbs, not behavior.
var log = logrus.StandardLogger()

func logInvariantViolation(msg string) {
	log.WithField("component", "holdem").Errorf("internal invariant violated: %s", msg)
}

func logIncompleteRaise(seat int, amount, minRaise int64) {
	log.WithFields(logrus.Fields{
		"seat":      seat,
		"amount":    amount,
		"min_raise": minRaise,
	}).Debug("all-in below min-raise does not reopen action")
}

func logPotPartition(pots []Pot) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for i, p := range pots {
		log.WithFields(logrus.Fields{
			"index":     i,
			"amount":    p.Amount,
			"eligible":  p.Eligible,
			"cap_level": p.CapLevel,
		}).Debug("pot layer computed")
	}
}
