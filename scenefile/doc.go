// Package scenefile reads stacking-context trees from YAML scene documents
// and render settings from TOML.
//
// A scene is a page size plus a root stacking context. Every context lists
// its display items, each tagged with the paint section it belongs to, and
// its children:
//
//	width: 200
//	height: 120
//	root:
//	  items:
//	    - {kind: solid, section: background, bounds: [0, 0, 200, 120], color: "#eee"}
//	    - {kind: text, bounds: [10, 10, 180, 20], text: Hello, size: 16, origin: [10, 26]}
//	  children:
//	    - bounds: [20, 40, 60, 60]
//	      z: 1
//	      filters: [{kind: opacity, amount: 0.5}]
//	      items:
//	        - {kind: solid, bounds: [0, 0, 60, 60], color: "#00f", node: 7, cursor: pointer}
//
// Coordinates are CSS pixels. Item and child bounds are relative to the
// enclosing context.
package scenefile
