package fixtures

// HTML fixtures replicating the portal behaviors that make the interaction layer
// earn its keep. Class names follow the real application (ant-design widgets,
// tailwind validation messages) so the page layer's selectors work unchanged.

// LoginFormHTML is a login form with blank-field validation messages and an error
// toast. Submitting with credentials POSTs them to ./submit; submitting with a blank
// field renders the corresponding validation message instead.
const LoginFormHTML = `<!DOCTYPE html>
<html>
<head><title>CAndILeasing</title></head>
<body>
<form id="login" method="post" action="./submit">
  <input name="email" type="email">
  <p class="text-xs mt-1" id="email-error" hidden>Email cannot be blank</p>
  <input name="password" type="password">
  <p class="text-xs mt-1" id="password-error" hidden>Password cannot be blank</p>
  <button type="submit" buttontype="primary">Sign In</button>
</form>
<div role="alert" hidden>Invalid username or password</div>
<script>
  document.getElementById("login").addEventListener("submit", function (e) {
    var email = document.querySelector("input[name=email]").value;
    var password = document.querySelector("input[name=password]").value;
    var blank = false;
    if (!email) { document.getElementById("email-error").hidden = false; blank = true; }
    if (!password) { document.getElementById("password-error").hidden = false; blank = true; }
    if (blank) { e.preventDefault(); return; }
    if (email.indexOf("wrong") === 0) {
      e.preventDefault();
      document.querySelector("div[role=alert]").hidden = false;
    }
  });
</script>
</body>
</html>`

// AntSelectHTML is a lookalike of the ant-design select: the dropdown opens after a
// short delay, renders a long option list, and records the chosen value both in the
// selection item and in a form POST to ./submit.
const AntSelectHTML = `<!DOCTYPE html>
<html>
<head><title>Select fixture</title>
<style>
  .ant-select-dropdown-hidden { display: none; }
  .ant-select-dropdown { max-height: 150px; overflow-y: auto; }
</style>
</head>
<body>
<form id="f" method="post" action="./submit">
  <div class="ant-select">
    <div class="ant-select-selector" tabindex="0">
      <span class="ant-select-selection-item" title=""></span>
    </div>
  </div>
  <input type="hidden" name="bank" id="bank">
  <button type="submit">Add Bank</button>
</form>
<div class="ant-select-dropdown ant-select-dropdown-hidden" id="dd"></div>
<script>
  var banks = [];
  for (var i = 1; i <= 60; i++) { banks.push("BANK " + i); }
  banks.splice(40, 0, "GLOBUS BANK");
  var dd = document.getElementById("dd");
  banks.forEach(function (name) {
    var opt = document.createElement("div");
    opt.className = "ant-select-item-option";
    opt.setAttribute("title", name);
    opt.textContent = name;
    opt.addEventListener("click", function () {
      var item = document.querySelector(".ant-select-selection-item");
      item.textContent = name;
      item.setAttribute("title", name);
      document.getElementById("bank").value = name;
      dd.classList.add("ant-select-dropdown-hidden");
    });
    dd.appendChild(opt);
  });
  document.querySelector(".ant-select-selector").addEventListener("click", function () {
    setTimeout(function () { dd.classList.remove("ant-select-dropdown-hidden"); }, 300);
  });
</script>
</body>
</html>`

// DatePickerHTML is a lookalike of the ant-design date picker: clicking the input
// opens a dropdown, and pressing Enter commits the typed value and closes it.
const DatePickerHTML = `<!DOCTYPE html>
<html>
<head><title>Date picker fixture</title>
<style>.ant-picker-dropdown-hidden { display: none; }</style>
</head>
<body>
<label>Issued Date</label>
<div class="ant-picker"><input name="issuedDate" autocomplete="off"></div>
<div class="ant-picker-dropdown ant-picker-dropdown-hidden" id="panel">calendar</div>
<script>
  var input = document.querySelector("input[name=issuedDate]");
  var panel = document.getElementById("panel");
  input.addEventListener("click", function () {
    panel.classList.remove("ant-picker-dropdown-hidden");
  });
  input.addEventListener("keydown", function (e) {
    if (e.key === "Enter") {
      input.setAttribute("data-committed", input.value);
      panel.classList.add("ant-picker-dropdown-hidden");
    }
  });
</script>
</body>
</html>`

// OverlayHTML covers the page with an ant-design spinner mask for a moment after
// load; a click on the button only works once the overlay has cleared.
const OverlayHTML = `<!DOCTYPE html>
<html>
<head><title>Overlay fixture</title>
<style>
  .ant-spin-spinning { position: fixed; inset: 0; background: rgba(255,255,255,.6); z-index: 10; }
</style>
</head>
<body>
<div class="ant-spin-spinning" id="spinner"></div>
<button id="target" onclick="this.textContent='clicked'">click me</button>
<script>
  setTimeout(function () {
    var spinner = document.getElementById("spinner");
    spinner.parentNode.removeChild(spinner);
  }, 800);
</script>
</body>
</html>`

// RerenderHTML replaces its button with a fresh DOM node several times shortly after
// load, the way a virtualized list re-renders rows. A click racing the re-render sees
// a detached element and must be retried.
const RerenderHTML = `<!DOCTYPE html>
<html>
<head><title>Rerender fixture</title></head>
<body>
<div id="holder"><button id="target">save</button></div>
<script>
  var remaining = 5;
  var timer = setInterval(function () {
    var holder = document.getElementById("holder");
    var fresh = document.createElement("button");
    fresh.id = "target";
    fresh.textContent = "save";
    fresh.addEventListener("click", function () { fresh.textContent = "clicked"; });
    holder.replaceChild(fresh, holder.firstChild);
    if (--remaining === 0) { clearInterval(timer); }
  }, 150);
</script>
</body>
</html>`
