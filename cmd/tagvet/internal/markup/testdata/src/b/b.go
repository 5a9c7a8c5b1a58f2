package b

func Markup(s string) string { return s }

func Other(s string) string { return s }

var _ = Markup("<View>{/* <Text> */}</View>")
var _ = Markup("<View><Text></View>")  // want `expected closing tag </Text> \(opened at 6\) but found </View> at index 12`
var _ = Markup("<View><Icon/><Label>") // want `unclosed tags: \[\('View', 0\), \('Label', 13\)\]`

var _ = Other("<View><Text></View>")
