// Package xformdoc reads and writes YAML documents describing named 4x4
// transforms, and checks them with the geom validators.
//
// A transform is either a raw column-major matrix, a list of composition
// steps, or both (the steps compose onto the matrix):
//
//	version: 1
//	transforms:
//	  - name: model
//	    steps:
//	      - translate: [1, -2, 3]
//	      - rotate: {angle: 90, axis: [0, 0, 1], degrees: true}
//	      - scale: [2, 2, 2]
//	  - name: raw
//	    matrix: [1,0,0,0, 0,1,0,0, 0,0,1,0, 4,5,6,1]
//
// Steps compose like geom.Mat4.Translated/Rotated: each step right-multiplies
// the accumulated matrix, so the last step is the first applied to a point.
package xformdoc
