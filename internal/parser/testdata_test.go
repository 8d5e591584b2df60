package parser

// islandTopology is a small quantized topology shared by the tests.
//
// Arc 0 decodes to (10,20) (11,20) (11,24); arc 1 to (11,24) (10,24) (10,20).
const islandTopology = `{
  "type": "Topology",
  "bbox": [10, 20, 11, 24],
  "transform": {"scale": [0.5, 2], "translate": [10, 20]},
  "arcs": [
    [[0, 0], [2, 0], [0, 2]],
    [[2, 2], [-2, 0], [0, -2]]
  ],
  "objects": {
    "land": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "arcs": [[0, 1]], "properties": {"nam": "Island"}},
        {"type": "LineString", "arcs": [-1]}
      ]
    },
    "mark": {"type": "Point", "coordinates": [4, 4]}
  }
}`
