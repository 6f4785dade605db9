package xss

// Blacklists of dangerous markup. Event handler names come from WebKit,
// Chromium/Blink, Firefox/Gecko and the W3C/WHATWG specs, stored without
// their "on" prefix.

var blackTags = []string{
	"APPLET", "BASE", "COMMENT", "EMBED", "FRAME", "FRAMESET", "HANDLER",
	"IFRAME", "IMPORT", "ISINDEX", "LINK", "LISTENER", "META", "NOSCRIPT",
	"OBJECT", "SCRIPT", "STYLE", "VMLFRAME", "XML", "XSS",
}

var blackEvents = []string{
	"ABORT", "ACCESSKEYNOTFOUND", "ACTIVATE", "ACTIVE", "ADDSOURCEBUFFER",
	"ADDSTREAM", "ADDTRACK", "AFTERPAINT", "AFTERPRINT", "AFTERSCRIPTEXECUTE",
	"ANIMATIONCANCEL", "ANIMATIONEND", "ANIMATIONITERATION", "ANIMATIONSTART",
	"AUDIOEND", "AUDIOCOMPLETE", "AUDIOPROCESS", "AUDIOSTART", "AUTOCOMPLETE",
	"AUTOCOMPLETEERROR", "AUXCLICK", "BACKGROUNDFETCHABORT",
	"BACKGROUNDFETCHCLICK", "BACKGROUNDFETCHFAIL", "BACKGROUNDFETCHSUCCESS",
	"BEFOREACTIVATE", "BEFORECOPY", "BEFORECUT", "BEFOREINPUT", "BEFORELOAD",
	"BEFOREMATCH", "BEFOREPASTE", "BEFOREPRINT", "BEFORESCRIPTEXECUTE",
	"BEFORETOGGLE", "BEFOREUNLOAD", "BEGINEVENT", "BLOCKED", "BLUR", "BOUNDARY",
	"BUFFEREDAMOUNTLOW", "BUFFEREDCHANGE", "CACHED", "CANCEL", "CANPLAY",
	"CANPLAYTHROUGH", "CHANGE", "CHARGINGCHANGE", "CHARGINGTIMECHANGE",
	"CHECKING", "CLICK", "CLOSE", "CLOSING", "COMPLETE", "COMPOSITIONEND",
	"COMPOSITIONSTART", "COMPOSITIONCHANGE", "COMPOSITIONUPDATE", "COMMAND",
	"CONFIGURATIONCHANGE", "CONNECT", "CONNECTING", "CONNECTIONSTATECHANGE",
	"CONTENTVISIBILITYAUTOSTATECHANGE", "CONTEXTLOST", "CONTEXTMENU",
	"CONTEXTRESTORED", "CONTROLLERCHANGE", "COOKIECHANGE",
	"COORDINATORSTATECHANGE", "COPY", "COUPONCODECHANGED", "CUECHANGE",
	"CURRENTENTRYCHANGE", "CUT", "DATAAVAILABLE", "DATACHANNEL", "DBLCLICK",
	"DEQUEUE", "DEVICECHANGE", "DEVICELIGHT", "DEVICEMOTION",
	"DEVICEORIENTATION", "DEVICEORIENTATIONABSOLUTE", "DISCHARGINGTIMECHANGE",
	"DISCONNECT", "DISPOSE", "DOMACTIVATE", "DOMCHARACTERDATAMODIFIED",
	"DOMCONTENTLOADED", "DOMNODEINSERTED", "DOMNODEINSERTEDINTODOCUMENT",
	"DOMNODEREMOVED", "DOMNODEREMOVEDFROMDOCUMENT", "DOMSUBTREEMODIFIED",
	"DOWNLOADING", "DRAG", "DRAGEND", "DRAGENTER", "DRAGLEAVE", "DRAGEXIT",
	"DRAGOVER", "DRAGSTART", "DROP", "DURATIONCHANGE", "EMPTIED", "ENCRYPTED",
	"EDGEUICANCELED", "EDGEUICOMPLETED", "EDGEUISTARTED", "EDITORBEFOREINPUT",
	"EDITORINPUT", "END", "ENDED", "ENDEVENT", "ENDSTREAMING", "ENTER",
	"ENTERPICTUREINPICTURE", "ERROR", "EXIT", "FENCEDTREECLICK", "FETCH",
	"FINISH", "FOCUS", "FOCUSIN", "FOCUSOUT", "FORMCHANGE",
	"FORMCHECKBOXSTATECHANGE", "FORMDATA", "FORMINVALID",
	"FORMRADIOSTATECHANGE", "FORMRESET", "FORMSELECT", "FORMSUBMIT",
	"FULLSCREENCHANGE", "FULLSCREENERROR", "GAMEPADAXISMOVE",
	"GAMEPADBUTTONDOWN", "GAMEPADBUTTONUP", "GAMEPADCONNECTED",
	"GAMEPADDISCONNECTED", "GATHERINGSTATECHANGE", "GESTURECHANGE",
	"GESTUREEND", "GESTURESCROLLEND", "GESTURESCROLLSTART",
	"GESTURESCROLLUPDATE", "GESTURESTART", "GESTURETAP", "GESTURETAPDOWN",
	"GOTPOINTERCAPTURE", "HASHCHANGE", "ICECANDIDATE", "ICECANDIDATEERROR",
	"ICECONNECTIONSTATECHANGE", "ICEGATHERINGSTATECHANGE", "IMAGEABORT",
	"INACTIVE", "INPUT", "INPUTSOURCESCHANGE", "INSTALL", "INVALID", "INVOKE",
	"KEYDOWN", "KEYPRESS", "KEYSTATUSESCHANGE", "KEYUP", "LANGUAGECHANGE",
	"LEAVEPICTUREINPICTURE", "LEGACYATTRMODIFIED",
	"LEGACYCHARACTERDATAMODIFIED", "LEGACYDOMACTIVATE", "LEGACYDOMFOCUSIN",
	"LEGACYDOMFOCUSOUT", "LEGACYMOUSELINEORPAGESCROLL",
	"LEGACYMOUSEPIXELSCROLL", "LEGACYNODEINSERTED",
	"LEGACYNODEINSERTEDINTODOCUMENT", "LEGACYNODEREMOVED",
	"LEGACYNODEREMOVEDFROMDOCUMENT", "LEGACYSUBTREEMODIFIED", "LEGACYTEXTINPUT",
	"LEVELCHANGE", "LOAD", "LOADEDDATA", "LOADEDMETADATA", "LOADEND", "LOADING",
	"LOADINGDONE", "LOADINGERROR", "LOADSTART", "LOSTPOINTERCAPTURE",
	"MAGNIFYGESTURE", "MAGNIFYGESTURESTART", "MAGNIFYGESTUREUPDATE", "MARK",
	"MEDIARECORDERDATAAVAILABLE", "MEDIARECORDERSTOP", "MEDIARECORDERWARNING",
	"MERCHANTVALIDATION", "MESSAGE", "MESSAGEERROR", "MOUSEDOUBLECLICK",
	"MOUSEDOWN", "MOUSEENTER", "MOUSEEXPLOREBYTOUCH", "MOUSEHITTEST",
	"MOUSELEAVE", "MOUSELONGTAP", "MOUSEMOVE", "MOUSEOUT", "MOUSEOVER",
	"MOUSEUP", "MOUSEWHEEL", "MOZFULLSCREENCHANGE", "MOZFULLSCREENERROR",
	"MOZPOINTERLOCKCHANGE", "MOZPOINTERLOCKERROR", "MOZVISUALRESIZE",
	"MOZVISUALSCROLL", "MUTE", "NAVIGATE", "NAVIGATEERROR", "NAVIGATESUCCESS",
	"NEGOTIATIONNEEDED", "NEXTTRACK", "NOMATCH", "NOTIFICATIONCLICK",
	"NOTIFICATIONCLOSE", "NOUPDATE", "OBSOLETE", "OFFLINE", "ONLINE", "OPEN",
	"ORIENTATIONCHANGE", "OVERFLOWCHANGED", "OVERSCROLL", "PAGEHIDE",
	"PAGEREVEAL", "PAGESHOW", "PAGESWAP", "PASTE", "PAUSE", "PAYERDETAILCHANGE",
	"PAYMENTAUTHORIZED", "PAYMENTMETHODCHANGE", "PAYMENTMETHODSELECTED", "PLAY",
	"PLAYING", "POINTERAUXCLICK", "POINTERCANCEL", "POINTERCLICK",
	"POINTERDOWN", "POINTERENTER", "POINTERGOTCAPTURE", "POINTERLEAVE",
	"POINTERLOCKCHANGE", "POINTERLOCKERROR", "POINTERLOSTCAPTURE",
	"POINTERMOVE", "POINTEROUT", "POINTEROVER", "POINTERRAWUPDATE", "POINTERUP",
	"POPSTATE", "PRESSTAPGESTURE", "PREVIOUSTRACK", "PROPERTYCHANGE",
	"PROCESSORERROR", "PROGRESS", "PUSH", "PUSHNOTIFICATION",
	"PUSHSUBSCRIPTIONCHANGE", "QUALITYCHANGE", "RATECHANGE", "READYSTATECHANGE",
	"REDRAW", "REJECTIONHANDLED", "RELEASE", "REMOVE", "REMOVESOURCEBUFFER",
	"REMOVESTREAM", "REMOVETRACK", "REPEAT", "REPEATEVENT", "RESET", "RESIZE",
	"RESOURCETIMINGBUFFERFULL", "RESULT", "RESUME", "ROTATEGESTURE",
	"ROTATEGESTURESTART", "ROTATEGESTUREUPDATE", "RTCTRANSFORM", "SCROLL",
	"SCROLLEDAREACHANGED", "SCROLLEND", "SCROLLPORTOVERFLOW",
	"SCROLLPORTUNDERFLOW", "SCROLLSNAPCHANGE", "SCROLLSNAPCHANGING", "SEARCH",
	"SECURITYPOLICYVIOLATION", "SEEKED", "SEEKING", "SELECT",
	"SELECTEDCANDIDATEPAIRCHANGE", "SELECTEND", "SELECTIONCHANGE",
	"SELECTSTART", "SHIPPINGADDRESSCHANGE", "SHIPPINGCONTACTSELECTED",
	"SHIPPINGMETHODSELECTED", "SHIPPINGOPTIONCHANGE", "SHOW",
	"SIGNALINGSTATECHANGE", "SLOTCHANGE", "SMILBEGINEVENT", "SMILENDEVENT",
	"SMILREPEATEVENT", "SORT", "SOUNDEND", "SOUNDSTART", "SOURCECLOSE",
	"SOURCEENDED", "SOURCEOPEN", "SPEECHEND", "SPEECHSTART", "SQUEEZE",
	"SQUEEZEEND", "SQUEEZESTART", "STALLED", "START", "STARTED",
	"STARTSTREAMING", "STATECHANGE", "STOP", "STORAGE", "SUBMIT", "SVGLOAD",
	"SVGSCROLL", "SWIPEGESTURE", "SWIPEGESTUREEND", "SWIPEGESTUREMAYSTART",
	"SWIPEGESTURESTART", "SWIPEGESTUREUPDATE", "SUCCESS", "SUSPEND",
	"TAPGESTURE", "TEXTINPUT", "TIMEOUT", "TIMEUPDATE", "TOGGLE", "TONECHANGE",
	"TOUCHCANCEL", "TOUCHEND", "TOUCHFORCECHANGE", "TOUCHMOVE", "TOUCHSTART",
	"TRACK", "TRANSITIONCANCEL", "TRANSITIONEND", "TRANSITIONRUN",
	"TRANSITIONSTART", "UNCAPTUREDERROR", "UNHANDLEDREJECTION",
	"UNIDENTIFIEDEVENT", "UNLOAD", "UNMUTE", "USERPROXIMITY", "UPDATE",
	"UPDATEEND", "UPDATEFOUND", "UPDATEREADY", "UPDATESTART", "UPGRADENEEDED",
	"VALIDATEMERCHANT", "VERSIONCHANGE", "VISIBILITYCHANGE", "VOICESCHANGED",
	"VOLUMECHANGE", "VRDISPLAYACTIVATE", "VRDISPLAYCONNECT",
	"VRDISPLAYDEACTIVATE", "VRDISPLAYDISCONNECT", "VRDISPLAYPRESENTCHANGE",
	"WAITING", "WAITINGFORKEY", "WEBGLCONTEXTCREATIONERROR", "WEBGLCONTEXTLOST",
	"WEBGLCONTEXTRESTORED", "WEBKITANIMATIONEND", "WEBKITANIMATIONITERATION",
	"WEBKITANIMATIONSTART", "WEBKITASSOCIATEFORMCONTROLS",
	"WEBKITAUTOFILLREQUEST", "WEBKITBEFORETEXTINSERTED",
	"WEBKITBEGINFULLSCREEN", "WEBKITCURRENTPLAYBACKTARGETISWIRELESSCHANGED",
	"WEBKITENDFULLSCREEN", "WEBKITFULLSCREENCHANGE", "WEBKITFULLSCREENERROR",
	"WEBKITKEYADDED", "WEBKITKEYERROR", "WEBKITKEYMESSAGE",
	"WEBKITMEDIASESSIONMETADATACHANGED", "WEBKITMOUSEFORCECHANGED",
	"WEBKITMOUSEFORCEDOWN", "WEBKITMOUSEFORCEUP", "WEBKITMOUSEFORCEWILLBEGIN",
	"WEBKITNEEDKEY", "WEBKITNETWORKINFOCHANGE",
	"WEBKITPLAYBACKTARGETAVAILABILITYCHANGED", "WEBKITPRESENTATIONMODECHANGED",
	"WEBKITREMOVESOURCEBUFFER", "WEBKITSHADOWROOTATTACHED", "WEBKITSOURCECLOSE",
	"WEBKITSOURCEENDED", "WEBKITSOURCEOPEN", "WEBKITTRANSITIONEND", "WHEEL",
	"WRITE", "WRITEEND", "WRITESTART", "XULBROADCAST", "XULCOMMANDUPDATE",
	"XULPOPUPHIDDEN", "XULPOPUPHIDING", "XULPOPUPSHOWING", "XULPOPUPSHOWN",
	"XULSYSTEMSTATUSBARCLICK", "ZOOM",
}

var blackAttrs = []struct {
	name  string
	atype attrType
}{
	{"ACTION", attrURL},
	{"ATTRIBUTENAME", attrIndirect},
	{"BY", attrURL},
	{"BACKGROUND", attrURL},
	{"DATAFORMATAS", attrBlack},
	{"DATASRC", attrBlack},
	{"DYNSRC", attrURL},
	{"FILTER", attrStyle},
	{"FORMACTION", attrURL},
	{"FOLDER", attrURL},
	{"FROM", attrURL},
	{"HANDLER", attrURL},
	{"HREF", attrURL},
	{"LOWSRC", attrURL},
	{"POSTER", attrURL},
	{"SRC", attrURL},
	{"STYLE", attrStyle},
	{"TO", attrURL},
	{"VALUES", attrURL},
	{"XLINK:HREF", attrURL},
}

