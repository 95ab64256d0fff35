package permit

import "github.com/supremind/permit/types"

// resources guarded by the default registry
const (
	DataObjects types.Resource = "data_objects"
	Evidence    types.Resource = "evidence"
)

// actions on data objects
const (
	Inventory types.Action = "inventory"
	Metadata  types.Action = "metadata"
	Upload    types.Action = "upload"
	Delete    types.Action = "delete"
)

// actions on evidence
const (
	ViewEvidence types.Action = "evidence"
	Download     types.Action = "download"
)

// roles known to the default registry
const (
	Admin        types.Role = "admin"
	Examiner     types.Role = "examiner"
	ReadOnlyUser types.Role = "readOnlyUser"
)

// DefaultSchema declares the closed resource and action sets of the default
// registry. It returns a fresh copy every time, callers can use it as a
// starting point for their own schema without disturbing others.
func DefaultSchema() types.Schema {
	return types.Schema{
		DataObjects: {Inventory, Metadata, Upload, Delete},
		Evidence:    {ViewEvidence, Download},
	}
}

// DefaultTable returns the rule table of the default registry:
// admins do anything, examiners work on data objects but cannot destroy them
// and must be identified to download evidence, read only users look but do
// not touch.
func DefaultTable() types.Table {
	return types.Table{
		Admin: {
			DataObjects: {
				Inventory: types.Grant(),
				Metadata:  types.Grant(),
				Upload:    types.Grant(),
				Delete:    types.Grant(),
			},
			Evidence: {
				ViewEvidence: types.Grant(),
				Download:     types.Grant(),
			},
		},
		Examiner: {
			DataObjects: {
				Inventory: types.Grant(),
				Metadata:  types.Grant(),
				Upload:    types.Grant(),
				Delete:    types.Deny(),
			},
			Evidence: {
				ViewEvidence: types.Grant(),
				Download: types.When(func(u types.User) bool {
					return u.ID != ""
				}),
			},
		},
		ReadOnlyUser: {
			DataObjects: {
				Inventory: types.Grant(),
				Metadata:  types.Deny(),
				Upload:    types.Deny(),
				Delete:    types.Deny(),
			},
			Evidence: {
				ViewEvidence: types.Grant(),
				Download:     types.Grant(),
			},
		},
	}
}

// Default creates a decider over the default registry
func Default(opts ...Option) (types.Decider, error) {
	return New(DefaultSchema(), DefaultTable(), opts...)
}
