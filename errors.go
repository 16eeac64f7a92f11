// errors.go — sentinel errors for the ikdtree package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package ikdtree

import "errors"

// ErrInvalidConfig indicates a Config field is outside its documented
// domain: DeleteCriterion outside (0,1], BalanceCriterion outside (0.5,1),
// VoxelSize <= 0, or MinRebuildSize <= 0.
var ErrInvalidConfig = errors.New("ikdtree: invalid configuration")
