package nn

import "errors"

// ErrMissingLoss is returned by Builder.Build when no loss gradient
// function was configured.
var ErrMissingLoss = errors.New("nn: network requires a loss gradient function")
