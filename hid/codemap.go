package hid

// KeyChars maps HID usage codes to their unshifted and shifted characters on
// a US boot-protocol keyboard. Backspace and CapsLock are control keys and
// deliberately absent; Decode turns them into events instead of characters.
var KeyChars = map[uint8][2]rune{
	// Letters
	KeyA: {'a', 'A'}, KeyB: {'b', 'B'}, KeyC: {'c', 'C'}, KeyD: {'d', 'D'},
	KeyE: {'e', 'E'}, KeyF: {'f', 'F'}, KeyG: {'g', 'G'}, KeyH: {'h', 'H'},
	KeyI: {'i', 'I'}, KeyJ: {'j', 'J'}, KeyK: {'k', 'K'}, KeyL: {'l', 'L'},
	KeyM: {'m', 'M'}, KeyN: {'n', 'N'}, KeyO: {'o', 'O'}, KeyP: {'p', 'P'},
	KeyQ: {'q', 'Q'}, KeyR: {'r', 'R'}, KeyS: {'s', 'S'}, KeyT: {'t', 'T'},
	KeyU: {'u', 'U'}, KeyV: {'v', 'V'}, KeyW: {'w', 'W'}, KeyX: {'x', 'X'},
	KeyY: {'y', 'Y'}, KeyZ: {'z', 'Z'},

	// Numbers (top row)
	Key1: {'1', '!'}, Key2: {'2', '@'}, Key3: {'3', '#'}, Key4: {'4', '$'},
	Key5: {'5', '%'}, Key6: {'6', '^'}, Key7: {'7', '&'}, Key8: {'8', '*'},
	Key9: {'9', '('}, Key0: {'0', ')'},

	// Whitespace and punctuation
	KeyEnter:      {'\n', '\n'},
	KeyTab:        {'\t', '\t'},
	KeySpace:      {' ', ' '},
	KeyMinus:      {'-', '_'},
	KeyEqual:      {'=', '+'},
	KeyLeftBrace:  {'[', '{'},
	KeyRightBrace: {']', '}'},
	KeyBackslash:  {'\\', '|'},
	KeyNonUSHash:  {'#', '~'},
	KeySemicolon:  {';', ':'},
	KeyApostrophe: {'\'', '"'},
	KeyComma:      {',', '<'},
	KeyPeriod:     {'.', '>'},
	KeySlash:      {'/', '?'},
}
