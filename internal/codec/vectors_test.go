package codec

// Snappy blocks produced by the reference encoder. Encoders may choose
// different matches, so these are only used to check decoding.

// largeTextFrame is largeTextInput packed with the key table [text].
var largeTextFrame = []byte{
	250, 2, 184, 91, 116, 101, 120, 116, 93, 123, 96, 48, 34, 58, 32, 34, 79, 110, 101, 32,
	111, 102, 32, 116, 104, 101, 32, 109, 111, 115, 116, 32, 101, 120, 99, 105, 116, 105, 110, 103,
	32, 116, 104, 105, 110, 103, 115, 32, 105, 115, 5, 28, 56, 97, 98, 105, 108, 105, 116, 121,
	32, 116, 111, 32, 116, 101, 115, 116, 5, 20, 4, 108, 97, 5, 11, 28, 97, 110, 100, 32,
	103, 114, 101, 97, 5, 13, 224, 119, 101, 98, 32, 112, 108, 97, 116, 102, 111, 114, 109, 32,
	102, 101, 97, 116, 117, 114, 101, 115, 32, 108, 105, 107, 101, 32, 69, 83, 54, 32, 109, 111,
	100, 117, 108, 101, 115, 44, 32, 115, 101, 114, 118, 105, 99, 101, 32, 119, 111, 114, 107, 101,
	114, 115, 44, 32, 1, 70, 192, 115, 116, 114, 101, 97, 109, 115, 46, 32, 87, 105, 116, 104,
	32, 104, 101, 97, 100, 108, 101, 115, 115, 32, 99, 104, 114, 111, 109, 101, 44, 32, 121, 111,
	117, 32, 99, 97, 110, 32, 119, 114, 105, 116, 101, 32, 97, 112, 112, 115, 5, 124, 5, 120,
	12, 116, 104, 111, 115, 13, 20, 0, 119, 1, 61, 120, 117, 112, 45, 116, 111, 45, 100, 97,
	116, 101, 32, 114, 101, 110, 100, 101, 114, 105, 110, 103, 46, 32, 84, 104, 101, 32, 111, 116,
	104, 101, 114, 9, 222, 56, 32, 116, 104, 97, 116, 32, 105, 116, 32, 117, 110, 108, 111, 99,
	107, 17, 237, 1, 73, 84, 119, 101, 115, 111, 109, 101, 32, 102, 117, 110, 99, 116, 105, 111,
	110, 97, 108, 105, 116, 105, 101, 115, 9, 201, 84, 110, 101, 116, 119, 111, 114, 107, 32, 116,
	104, 114, 111, 116, 116, 108, 105, 110, 103, 44, 32, 100, 101, 5, 207, 16, 101, 109, 117, 108,
	97, 1, 49, 0, 44, 5, 155, 60, 99, 111, 100, 101, 32, 99, 111, 118, 101, 114, 97, 103,
	101, 46, 34, 125,
}

// repeatedNameFrame is repeatedNameInput packed with the key table [name,Bhargav].
var repeatedNameFrame = []byte{
	86, 104, 91, 110, 97, 109, 101, 44, 66, 104, 97, 114, 103, 97, 118, 93, 91, 123, 96, 48,
	34, 58, 32, 96, 49, 34, 125, 44, 32, 230, 12, 0, 0, 93,
}

const largeTextInput = "{\"text\": \"One of the most exciting things is the ability to test the latest and greatest web platform features like ES6 modules, service workers, and streams. With headless chrome, you can write apps and test those apps with up-to-date rendering. The other thing that it unlocks is these awesome functionalities like network throttling, device emulation, and code coverage.\"}"

const repeatedNameInput = `[{"name": "Bhargav"}, {"name": "Bhargav"}, {"name": "Bhargav"}, {"name": "Bhargav"}, {"name": "Bhargav"}, {"name": "Bhargav"}]`
