// Package hcl loads declarative transform manifests and registers their
// contents through the registration pipeline.
//
// A manifest declares transforms as HCL blocks:
//
//	transform "unzip_jars" {
//	  action = "Unzip"
//
//	  from {
//	    format = "jar"
//	  }
//	  to {
//	    format = "classes"
//	  }
//
//	  parameters = [true, "retain-structure"]
//	}
//
// The action name is resolved against the action catalog; from/to blocks
// carry arbitrary attribute assignments; the optional parameters list feeds
// the transform's raw parameter values.
package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// attributeBlock captures the raw body of a from/to block so its attributes
// can be read without a fixed schema.
type attributeBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// transformBlock represents one `transform` block from a manifest file.
type transformBlock struct {
	Name       string          `hcl:"name,label"`
	Action     string          `hcl:"action"`
	From       *attributeBlock `hcl:"from,block"`
	To         *attributeBlock `hcl:"to,block"`
	Parameters hcl.Expression  `hcl:"parameters,optional"`
}

// manifest represents the top-level structure of a manifest file.
type manifest struct {
	Transforms []*transformBlock `hcl:"transform,block"`
}
