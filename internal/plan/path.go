package plan

import (
	"fmt"
	"path"
	"strings"

	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

// PathPlanner derives target folder paths (relative to the output root) and
// resolves file-name collisions within one run.
type PathPlanner struct {
	names           *NamePlanner
	organizeByMonth bool
}

func NewPathPlanner(names *NamePlanner, organizeByMonth bool) *PathPlanner {
	return &PathPlanner{names: names, organizeByMonth: organizeByMonth}
}

// PlanPath derives the folder for one file: an optional YYYY-MM segment
// followed by the vendor segment. When the date is absent the year-month
// segment is omitted and the file sits directly under the vendor segment.
func (p *PathPlanner) PlanPath(fields entity.ExtractedFields) string {
	vendorSeg := p.names.VendorFolderSegment(fields)
	if p.organizeByMonth && fields.InvoiceDate != nil {
		return path.Join(fields.InvoiceDate.Format("2006-01"), vendorSeg)
	}
	return vendorSeg
}

// CollisionResolver guarantees file-name uniqueness per target folder for
// one run. Comparison is case-insensitive to match typical filesystem
// semantics, and suffix assignment is deterministic in reservation order.
type CollisionResolver struct {
	used map[string]map[string]struct{} // folder (lowered) -> names (lowered)
}

func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{used: make(map[string]map[string]struct{})}
}

// Reserve returns the final, unique file name for the folder, appending
// _1, _2, ... before the extension until the name is free, and commits it.
func (r *CollisionResolver) Reserve(folder, fileName string) string {
	key := strings.ToLower(folder)
	names := r.used[key]
	if names == nil {
		names = make(map[string]struct{})
		r.used[key] = names
	}

	final := fileName
	if _, taken := names[strings.ToLower(final)]; taken {
		ext := path.Ext(fileName)
		base := strings.TrimSuffix(fileName, ext)
		for i := 1; ; i++ {
			final = fmt.Sprintf("%s_%d%s", base, i, ext)
			if _, taken := names[strings.ToLower(final)]; !taken {
				break
			}
		}
	}
	names[strings.ToLower(final)] = struct{}{}
	return final
}
