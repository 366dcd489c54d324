// Package jsonfile loads OCR text indexes from JSON files.
//
// The file maps image filenames to recognition results:
//
//	{
//	  "img1.png": {
//	    "text": "hello world",
//	    "lines": [
//	      {"text": "hello world", "words": [
//	        {"text": "hello", "bounding_rect": {"x": 0, "y": 0, "width": 10, "height": 4}}
//	      ]}
//	    ]
//	  }
//	}
//
// Every field shown is required. Unknown fields are ignored. Loading is
// all-or-nothing: any defect fails the whole load.
package jsonfile
