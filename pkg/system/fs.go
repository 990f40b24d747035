package system

import "github.com/spf13/afero"

// AppFs is the filesystem used for task inputs and credential key files.
// Tests replace it with an in-memory filesystem.
var AppFs afero.Fs = afero.NewOsFs()
