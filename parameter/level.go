package parameter

// FailedOrderLimit is the number of failed orders that ends the session
const FailedOrderLimit = 3
