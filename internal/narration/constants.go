package narration

// Currency is appended to every amount
const Currency = "ETH"

// AmountPlaces is the number of decimal places shown for amounts
const AmountPlaces = 4
