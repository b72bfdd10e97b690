package enigma

// Version is reported by "enigma version".
const Version = "0.3.0"
